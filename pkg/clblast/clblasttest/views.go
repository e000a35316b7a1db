package clblasttest

import (
	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

// operand carries the status codes CLBlast reports for one argument slot.
type operand struct {
	invalid native.Status
	short   native.Status
	inc     native.Status
	ld      native.Status
}

var (
	opX   = operand{invalid: native.InvalidVectorX, short: native.InsufficientMemoryX, inc: native.InvalidIncrementX}
	opY   = operand{invalid: native.InvalidVectorY, short: native.InsufficientMemoryY, inc: native.InvalidIncrementY}
	opOut = operand{invalid: native.InvalidVectorScalar, short: native.InsufficientMemoryScalar}
	opA   = operand{invalid: native.InvalidMatrixA, short: native.InsufficientMemoryA, ld: native.InvalidLeadDimA}
	opB   = operand{invalid: native.InvalidMatrixB, short: native.InsufficientMemoryB, ld: native.InvalidLeadDimB}
	opC   = operand{invalid: native.InvalidMatrixC, short: native.InsufficientMemoryC, ld: native.InvalidLeadDimC}
)

func data[T clblast.Element](m native.Memory) ([]T, bool) {
	b, ok := m.(*Buffer[T])
	if !ok || b == nil {
		return nil, false
	}
	return b.Data, true
}

// vector returns the elements of v starting at its offset.
func vector[T clblast.Element](v native.Vector, n uint64, op operand) ([]T, int, native.Status) {
	d, ok := data[T](v.Buffer)
	if !ok {
		return nil, 0, op.invalid
	}
	if v.Inc == 0 {
		return nil, 0, op.inc
	}
	if n > 0 && (n-1)*v.Inc+v.Offset+1 > uint64(len(d)) {
		return nil, 0, op.short
	}
	if v.Offset > uint64(len(d)) {
		return nil, 0, op.short
	}
	return d[v.Offset:], int(v.Inc), native.Success
}

func result[T clblast.Element](r native.Result) ([]T, native.Status) {
	d, ok := data[T](r.Buffer)
	if !ok {
		return nil, opOut.invalid
	}
	if r.Offset+1 > uint64(len(d)) {
		return nil, opOut.short
	}
	return d[r.Offset : r.Offset+1], native.Success
}

// matrix validates a rows×cols row-major view with leading dimension m.LD.
func matrix[T clblast.Scalar](m native.Matrix, rows, cols uint64, op operand) ([]T, native.Status) {
	d, ok := data[T](m.Buffer)
	if !ok {
		return nil, op.invalid
	}
	if m.LD < max(1, cols) {
		return nil, op.ld
	}
	if rows > 0 && cols > 0 && (rows-1)*m.LD+cols+m.Offset > uint64(len(d)) {
		return nil, op.short
	}
	if m.Offset > uint64(len(d)) {
		return nil, op.short
	}
	return d[m.Offset:], native.Success
}

// rowMajor returns the row-major shape of a stored matrix whose logical shape
// after applying trans is rows×cols.
func rowMajor(layout native.Layout, trans native.Transpose, rows, cols uint64) (uint64, uint64) {
	if trans != native.NoTrans {
		rows, cols = cols, rows
	}
	if layout == native.ColMajor {
		rows, cols = cols, rows
	}
	return rows, cols
}

func fromReal[T clblast.Scalar](r float64) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = float32(r)
	case *float64:
		*p = r
	case *complex64:
		*p = complex(float32(r), 0)
	case *complex128:
		*p = complex(r, 0)
	}
	return v
}

// magnitude is the comparison key of the extremum routines: the value itself
// for real types and its real part for complex ones, made absolute when abs
// is set. Complex absolute keys use |re|+|im| like reference BLAS.
func magnitude[T clblast.Scalar](v T, abs bool) float64 {
	var re, im float64
	switch x := any(v).(type) {
	case float32:
		re = float64(x)
	case float64:
		re = x
	case complex64:
		re, im = float64(real(x)), float64(imag(x))
	case complex128:
		re, im = real(x), imag(x)
	}
	if !abs {
		return re
	}
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	return re + im
}
