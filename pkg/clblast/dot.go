package clblast

import (
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

type dot[T Scalar] struct {
	p   pair[T]
	out VectorBuffer[T]
}

func (d *dot[T]) run(f family[native.DotArgs]) error {
	rt := f.of(precisionOf[T]())
	return d.p.descriptor.run(rt.name, []zap.Field{zap.Int("n", d.p.n)},
		func() error {
			if err := d.p.check(rt.name); err != nil {
				return err
			}
			return checkResult(rt.name, "out", d.out)
		},
		func(api native.API, call native.Call) native.Status {
			a := d.p.args()
			return rt.call(api, call, native.DotArgs{N: a.N, Out: d.out.result(), X: a.X, Y: a.Y})
		})
}

// Dot writes sum(x[i]*y[i]) into out. Complex operands are not conjugated.
type Dot[T Scalar] struct {
	d dot[T]
}

func NewDot[T Scalar](q *Queue, n int, x, y, out VectorBuffer[T]) *Dot[T] {
	return &Dot[T]{d: dot[T]{p: newPair(q, n, x, y), out: out}}
}

func (s *Dot[T]) XInc(inc int) *Dot[T]   { s.d.p.xInc = inc; return s }
func (s *Dot[T]) YInc(inc int) *Dot[T]   { s.d.p.yInc = inc; return s }
func (s *Dot[T]) Event(e *Event) *Dot[T] { s.d.p.event = e; return s }
func (s *Dot[T]) Run() error             { return s.d.run(dotFamily) }

// DotConjugate writes sum(conj(x[i])*y[i]) into out.
type DotConjugate[T Complex] struct {
	d dot[T]
}

func NewDotConjugate[T Complex](q *Queue, n int, x, y, out VectorBuffer[T]) *DotConjugate[T] {
	return &DotConjugate[T]{d: dot[T]{p: newPair(q, n, x, y), out: out}}
}

func (s *DotConjugate[T]) XInc(inc int) *DotConjugate[T]   { s.d.p.xInc = inc; return s }
func (s *DotConjugate[T]) YInc(inc int) *DotConjugate[T]   { s.d.p.yInc = inc; return s }
func (s *DotConjugate[T]) Event(e *Event) *DotConjugate[T] { s.d.p.event = e; return s }
func (s *DotConjugate[T]) Run() error                      { return s.d.run(dotcFamily) }
