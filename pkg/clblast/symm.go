package clblast

import (
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

// Symm computes C = alpha*A*B + beta*C when side is Left and
// C = alpha*B*A + beta*C when side is Right. Only the chosen triangle of the
// symmetric A is read.
type Symm[T Scalar] struct {
	descriptor
	side     Side
	triangle Triangle
	a, b, c  MatrixBuffer[T]
	alpha    T
	beta     T
}

func NewSymm[T Scalar](q *Queue, side Side, triangle Triangle, a, b, c MatrixBuffer[T]) *Symm[T] {
	return &Symm[T]{descriptor: descriptor{queue: q}, side: side, triangle: triangle, a: a, b: b, c: c, alpha: one[T]()}
}

func (s *Symm[T]) Alpha(alpha T) *Symm[T]  { s.alpha = alpha; return s }
func (s *Symm[T]) Beta(beta T) *Symm[T]    { s.beta = beta; return s }
func (s *Symm[T]) Event(e *Event) *Symm[T] { s.event = e; return s }

func (s *Symm[T]) Run() error {
	name := symmNames[precisionOf[T]()]
	var m, n int
	dims := []zap.Field{zap.Int("m", s.c.rows), zap.Int("n", s.c.columns), zap.Stringer("side", s.side), zap.Stringer("triangle", s.triangle)}
	return s.descriptor.run(name, dims,
		func() (err error) {
			m, n, err = symmShape(name, s.side, s.triangle, s.a, s.b, s.c)
			return err
		},
		func(api native.API, call native.Call) native.Status {
			layout, side, tri := s.c.layout.wire(), s.side.wire(), s.triangle.wire()
			M, N := uint64(m), uint64(n)
			a, b, c := s.a.matrix(), s.b.matrix(), s.c.matrix()
			switch alpha := any(s.alpha).(type) {
			case float32:
				return api.Ssymm(call, native.SymmArgs[float32]{
					Layout: layout, Side: side, Triangle: tri, M: M, N: N,
					Alpha: alpha, A: a, B: b, Beta: any(s.beta).(float32), C: c,
				})
			case float64:
				return api.Dsymm(call, native.SymmArgs[float64]{
					Layout: layout, Side: side, Triangle: tri, M: M, N: N,
					Alpha: alpha, A: a, B: b, Beta: any(s.beta).(float64), C: c,
				})
			case complex64:
				return api.Csymm(call, native.SymmArgs[native.Float2]{
					Layout: layout, Side: side, Triangle: tri, M: M, N: N,
					Alpha: ToFloat2(alpha), A: a, B: b, Beta: ToFloat2(any(s.beta).(complex64)), C: c,
				})
			default:
				return api.Zsymm(call, native.SymmArgs[native.Double2]{
					Layout: layout, Side: side, Triangle: tri, M: M, N: N,
					Alpha: ToDouble2(alpha.(complex128)), A: a, B: b, Beta: ToDouble2(any(s.beta).(complex128)), C: c,
				})
			}
		})
}
