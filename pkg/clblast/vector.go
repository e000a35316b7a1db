package clblast

import (
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

// pair is shared by the routines that walk x and y together.
type pair[T Scalar] struct {
	descriptor
	n    int
	x    VectorBuffer[T]
	y    VectorBuffer[T]
	xInc int
	yInc int
}

func newPair[T Scalar](q *Queue, n int, x, y VectorBuffer[T]) pair[T] {
	return pair[T]{descriptor: descriptor{queue: q}, n: n, x: x, y: y, xInc: 1, yInc: 1}
}

func (p *pair[T]) check(routine string) error {
	if err := checkCount(routine, p.n); err != nil {
		return err
	}
	if err := checkVector(routine, "x", p.x, p.n, p.xInc); err != nil {
		return err
	}
	return checkVector(routine, "y", p.y, p.n, p.yInc)
}

func (p *pair[T]) args() native.PairArgs {
	return native.PairArgs{N: uint64(p.n), X: p.x.vector(p.xInc), Y: p.y.vector(p.yInc)}
}

func (p *pair[T]) run(f family[native.PairArgs]) error {
	rt := f.of(precisionOf[T]())
	return p.descriptor.run(rt.name, []zap.Field{zap.Int("n", p.n)},
		func() error { return p.check(rt.name) },
		func(api native.API, call native.Call) native.Status { return rt.call(api, call, p.args()) })
}

// Swap exchanges the contents of x and y.
type Swap[T Scalar] struct {
	p pair[T]
}

func NewSwap[T Scalar](q *Queue, n int, x, y VectorBuffer[T]) *Swap[T] {
	return &Swap[T]{p: newPair(q, n, x, y)}
}

func (s *Swap[T]) XInc(inc int) *Swap[T]   { s.p.xInc = inc; return s }
func (s *Swap[T]) YInc(inc int) *Swap[T]   { s.p.yInc = inc; return s }
func (s *Swap[T]) Event(e *Event) *Swap[T] { s.p.event = e; return s }
func (s *Swap[T]) Run() error              { return s.p.run(swapFamily) }

// Copy overwrites y with x.
type Copy[T Scalar] struct {
	p pair[T]
}

func NewCopy[T Scalar](q *Queue, n int, x, y VectorBuffer[T]) *Copy[T] {
	return &Copy[T]{p: newPair(q, n, x, y)}
}

func (s *Copy[T]) XInc(inc int) *Copy[T]   { s.p.xInc = inc; return s }
func (s *Copy[T]) YInc(inc int) *Copy[T]   { s.p.yInc = inc; return s }
func (s *Copy[T]) Event(e *Event) *Copy[T] { s.p.event = e; return s }
func (s *Copy[T]) Run() error              { return s.p.run(copyFamily) }

// Axpy computes y = alpha*x + y. Alpha defaults to one.
type Axpy[T Scalar] struct {
	p     pair[T]
	alpha T
}

func NewAxpy[T Scalar](q *Queue, n int, x, y VectorBuffer[T]) *Axpy[T] {
	return &Axpy[T]{p: newPair(q, n, x, y), alpha: one[T]()}
}

func (s *Axpy[T]) Alpha(alpha T) *Axpy[T]  { s.alpha = alpha; return s }
func (s *Axpy[T]) XInc(inc int) *Axpy[T]   { s.p.xInc = inc; return s }
func (s *Axpy[T]) YInc(inc int) *Axpy[T]   { s.p.yInc = inc; return s }
func (s *Axpy[T]) Event(e *Event) *Axpy[T] { s.p.event = e; return s }

func (s *Axpy[T]) Run() error {
	name := axpyNames[precisionOf[T]()]
	return s.p.descriptor.run(name, []zap.Field{zap.Int("n", s.p.n)},
		func() error { return s.p.check(name) },
		func(api native.API, call native.Call) native.Status {
			a := s.p.args()
			switch alpha := any(s.alpha).(type) {
			case float32:
				return api.Saxpy(call, native.AxpyArgs[float32]{N: a.N, Alpha: alpha, X: a.X, Y: a.Y})
			case float64:
				return api.Daxpy(call, native.AxpyArgs[float64]{N: a.N, Alpha: alpha, X: a.X, Y: a.Y})
			case complex64:
				return api.Caxpy(call, native.AxpyArgs[native.Float2]{N: a.N, Alpha: ToFloat2(alpha), X: a.X, Y: a.Y})
			default:
				return api.Zaxpy(call, native.AxpyArgs[native.Double2]{N: a.N, Alpha: ToDouble2(alpha.(complex128)), X: a.X, Y: a.Y})
			}
		})
}

// Scale computes x = alpha*x in place. Alpha defaults to one.
type Scale[T Scalar] struct {
	descriptor
	n     int
	x     VectorBuffer[T]
	xInc  int
	alpha T
}

func NewScale[T Scalar](q *Queue, n int, x VectorBuffer[T]) *Scale[T] {
	return &Scale[T]{descriptor: descriptor{queue: q}, n: n, x: x, xInc: 1, alpha: one[T]()}
}

func (s *Scale[T]) Alpha(alpha T) *Scale[T]  { s.alpha = alpha; return s }
func (s *Scale[T]) XInc(inc int) *Scale[T]   { s.xInc = inc; return s }
func (s *Scale[T]) Event(e *Event) *Scale[T] { s.event = e; return s }

func (s *Scale[T]) Run() error {
	name := scalNames[precisionOf[T]()]
	return s.descriptor.run(name, []zap.Field{zap.Int("n", s.n)},
		func() error {
			if err := checkCount(name, s.n); err != nil {
				return err
			}
			return checkVector(name, "x", s.x, s.n, s.xInc)
		},
		func(api native.API, call native.Call) native.Status {
			n, x := uint64(s.n), s.x.vector(s.xInc)
			switch alpha := any(s.alpha).(type) {
			case float32:
				return api.Sscal(call, native.ScalArgs[float32]{N: n, Alpha: alpha, X: x})
			case float64:
				return api.Dscal(call, native.ScalArgs[float64]{N: n, Alpha: alpha, X: x})
			case complex64:
				return api.Cscal(call, native.ScalArgs[native.Float2]{N: n, Alpha: ToFloat2(alpha), X: x})
			default:
				return api.Zscal(call, native.ScalArgs[native.Double2]{N: n, Alpha: ToDouble2(alpha.(complex128)), X: x})
			}
		})
}
