package clblast

import (
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"go.uber.org/zap"
)

// Gemm computes C = alpha*op(A)*op(B) + beta*C. The problem sizes are read off
// the operands: m and n from C, k from op(A). Defaults are alpha one, beta
// zero and no transposition.
type Gemm[T Scalar] struct {
	descriptor
	a, b, c MatrixBuffer[T]
	transA  Transpose
	transB  Transpose
	alpha   T
	beta    T
}

func NewGemm[T Scalar](q *Queue, a, b, c MatrixBuffer[T]) *Gemm[T] {
	return &Gemm[T]{descriptor: descriptor{queue: q}, a: a, b: b, c: c, alpha: one[T]()}
}

func (g *Gemm[T]) TransposeA(t Transpose) *Gemm[T] { g.transA = t; return g }
func (g *Gemm[T]) TransposeB(t Transpose) *Gemm[T] { g.transB = t; return g }
func (g *Gemm[T]) Alpha(alpha T) *Gemm[T]          { g.alpha = alpha; return g }
func (g *Gemm[T]) Beta(beta T) *Gemm[T]            { g.beta = beta; return g }
func (g *Gemm[T]) Event(e *Event) *Gemm[T]         { g.event = e; return g }

func (g *Gemm[T]) Run() error {
	name := gemmNames[precisionOf[T]()]
	var m, n, k int
	dims := []zap.Field{zap.Int("m", g.c.rows), zap.Int("n", g.c.columns), zap.Stringer("transA", g.transA), zap.Stringer("transB", g.transB)}
	return g.descriptor.run(name, dims,
		func() (err error) {
			m, n, k, err = gemmShape(name, g.a, g.b, g.c, g.transA, g.transB)
			return err
		},
		func(api native.API, call native.Call) native.Status {
			layout, ta, tb := g.c.layout.wire(), g.transA.wire(), g.transB.wire()
			M, N, K := uint64(m), uint64(n), uint64(k)
			a, b, c := g.a.matrix(), g.b.matrix(), g.c.matrix()
			switch alpha := any(g.alpha).(type) {
			case float32:
				return api.Sgemm(call, native.GemmArgs[float32]{
					Layout: layout, TransA: ta, TransB: tb, M: M, N: N, K: K,
					Alpha: alpha, A: a, B: b, Beta: any(g.beta).(float32), C: c,
				})
			case float64:
				return api.Dgemm(call, native.GemmArgs[float64]{
					Layout: layout, TransA: ta, TransB: tb, M: M, N: N, K: K,
					Alpha: alpha, A: a, B: b, Beta: any(g.beta).(float64), C: c,
				})
			case complex64:
				return api.Cgemm(call, native.GemmArgs[native.Float2]{
					Layout: layout, TransA: ta, TransB: tb, M: M, N: N, K: K,
					Alpha: ToFloat2(alpha), A: a, B: b, Beta: ToFloat2(any(g.beta).(complex64)), C: c,
				})
			default:
				return api.Zgemm(call, native.GemmArgs[native.Double2]{
					Layout: layout, TransA: ta, TransB: tb, M: M, N: N, K: K,
					Alpha: ToDouble2(alpha.(complex128)), A: a, B: b, Beta: ToDouble2(any(g.beta).(complex128)), C: c,
				})
			}
		})
}
