package clblast

import (
	"errors"
	"fmt"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

var (
	// ErrShape is matched by every ShapeError.
	ErrShape = errors.New("clblast: operand shape violates routine contract")
	// ErrConsumed is returned when a descriptor is run a second time.
	ErrConsumed = errors.New("clblast: descriptor already consumed")
	// ErrNilHandle is returned when a queue or device handle is missing.
	ErrNilHandle = errors.New("clblast: nil handle")
)

// Category is the tier a translated status code belongs to.
type Category int

const (
	CategoryNone Category = iota
	CategoryOpenCL
	CategoryBLAS
	CategoryInternal
	CategoryUnrecognized
	CategoryShape
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "ok"
	case CategoryOpenCL:
		return "opencl"
	case CategoryBLAS:
		return "blas"
	case CategoryInternal:
		return "internal"
	case CategoryUnrecognized:
		return "unrecognized"
	case CategoryShape:
		return "shape"
	default:
		return "unknown"
	}
}

// CategoryOf reports which failure channel err came from. Errors that are
// neither status errors nor shape errors report CategoryUnrecognized.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNone
	}
	var (
		rt  RuntimeError
		arg ArgumentError
		in  InternalError
	)
	switch {
	case errors.As(err, &rt):
		return CategoryOpenCL
	case errors.As(err, &arg):
		return CategoryBLAS
	case errors.As(err, &in):
		return CategoryInternal
	case errors.Is(err, ErrShape), errors.Is(err, ErrNilHandle), errors.Is(err, ErrConsumed):
		return CategoryShape
	default:
		return CategoryUnrecognized
	}
}

// Translate maps a native status code onto the error taxonomy. Success maps to
// nil; codes no tier recognizes map to *UnrecognizedStatusError carrying the
// original code. Tiers are consulted OpenCL first, then BLAS, then CLBlast.
func Translate(code native.Status) error {
	if code == native.Success {
		return nil
	}
	if _, ok := runtimeErrors[RuntimeError(code)]; ok {
		return RuntimeError(code)
	}
	if _, ok := argumentErrors[ArgumentError(code)]; ok {
		return ArgumentError(code)
	}
	if _, ok := internalErrors[InternalError(code)]; ok {
		return InternalError(code)
	}
	return &UnrecognizedStatusError{Code: code}
}

// UnrecognizedStatusError is a status code outside every known tier.
type UnrecognizedStatusError struct {
	Code native.Status
}

func (e *UnrecognizedStatusError) Error() string {
	return fmt.Sprintf("clblast: unrecognized status code %d", int32(e.Code))
}

// CallError wraps a translated status with the routine that produced it.
type CallError struct {
	Routine string
	Status  native.Status
	Err     error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("clblast: %s failed: %v", e.Routine, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// ShapeError reports a dimension or stride contract violation found before any
// native call was issued.
type ShapeError struct {
	Routine string
	Operand string
	Reason  string
}

func (e *ShapeError) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("clblast: %s: %s", e.Routine, e.Reason)
	}
	return fmt.Sprintf("clblast: %s: operand %s: %s", e.Routine, e.Operand, e.Reason)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

func shapeErrorf(routine, operand, format string, args ...any) error {
	return &ShapeError{Routine: routine, Operand: operand, Reason: fmt.Sprintf(format, args...)}
}
