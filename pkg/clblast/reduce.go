package clblast

import (
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

// reduction is shared by every routine that folds x into one element of out.
type reduction[T Scalar, R Element] struct {
	descriptor
	n    int
	x    VectorBuffer[T]
	xInc int
	out  VectorBuffer[R]
}

func newReduction[T Scalar, R Element](q *Queue, n int, x VectorBuffer[T], out VectorBuffer[R]) reduction[T, R] {
	return reduction[T, R]{descriptor: descriptor{queue: q}, n: n, x: x, xInc: 1, out: out}
}

func (r *reduction[T, R]) run(f family[native.ReduceArgs]) error {
	rt := f.of(precisionOf[T]())
	return r.descriptor.run(rt.name, []zap.Field{zap.Int("n", r.n)},
		func() error {
			if err := checkCount(rt.name, r.n); err != nil {
				return err
			}
			if err := checkVector(rt.name, "x", r.x, r.n, r.xInc); err != nil {
				return err
			}
			return checkResult(rt.name, "out", r.out)
		},
		func(api native.API, call native.Call) native.Status {
			return rt.call(api, call, native.ReduceArgs{N: uint64(r.n), Out: r.out.result(), X: r.x.vector(r.xInc)})
		})
}

// Sum writes the sum of x into out. Unlike AbsoluteSum, no absolute value is
// taken first.
type Sum[T Scalar] struct {
	r reduction[T, T]
}

func NewSum[T Scalar](q *Queue, n int, x, out VectorBuffer[T]) *Sum[T] {
	return &Sum[T]{r: newReduction(q, n, x, out)}
}

func (s *Sum[T]) XInc(inc int) *Sum[T]   { s.r.xInc = inc; return s }
func (s *Sum[T]) Event(e *Event) *Sum[T] { s.r.event = e; return s }
func (s *Sum[T]) Run() error             { return s.r.run(sumFamily) }

// AbsoluteSum writes the sum of absolute values of x into out. Complex
// elements contribute |re|+|im|, and the real total lands in the real part of
// out.
type AbsoluteSum[T Scalar] struct {
	r reduction[T, T]
}

func NewAbsoluteSum[T Scalar](q *Queue, n int, x, out VectorBuffer[T]) *AbsoluteSum[T] {
	return &AbsoluteSum[T]{r: newReduction(q, n, x, out)}
}

func (s *AbsoluteSum[T]) XInc(inc int) *AbsoluteSum[T]   { s.r.xInc = inc; return s }
func (s *AbsoluteSum[T]) Event(e *Event) *AbsoluteSum[T] { s.r.event = e; return s }
func (s *AbsoluteSum[T]) Run() error                     { return s.r.run(asumFamily) }

// Norm2 writes the Euclidean norm of x into out. For complex x the norm lands
// in the real part of out.
type Norm2[T Scalar] struct {
	r reduction[T, T]
}

func NewNorm2[T Scalar](q *Queue, n int, x, out VectorBuffer[T]) *Norm2[T] {
	return &Norm2[T]{r: newReduction(q, n, x, out)}
}

func (s *Norm2[T]) XInc(inc int) *Norm2[T]   { s.r.xInc = inc; return s }
func (s *Norm2[T]) Event(e *Event) *Norm2[T] { s.r.event = e; return s }
func (s *Norm2[T]) Run() error               { return s.r.run(nrm2Family) }
