package clblasttest

import (
	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"gonum.org/v1/gonum/blas"
)

type gemmKernel[T any] func(tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)

type symmKernel[T any] func(s blas.Side, ul blas.Uplo, m, n int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int)

func transpose(t native.Transpose) blas.Transpose {
	switch t {
	case native.Trans:
		return blas.Trans
	case native.ConjTrans:
		return blas.ConjTrans
	default:
		return blas.NoTrans
	}
}

// scaleRows multiplies the rows×cols row-major view c by beta; it covers the
// k == 0 case where gonum would reject the empty operands.
func scaleRows[T clblast.Scalar](c []T, rows, cols, ld int, beta T) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c[i*ld+j] *= beta
		}
	}
}

// gemm runs on gonum's row-major kernels. A column-major problem is solved as
// its transpose: C^T = op(B)^T * op(A)^T, which swaps the operands and m/n.
func gemm[T clblast.Scalar, W any](args native.GemmArgs[W], conv func(W) T, kernel gemmKernel[T]) native.Status {
	if args.Layout != native.RowMajor && args.Layout != native.ColMajor {
		return native.InvalidValue
	}
	ar, ac := rowMajor(args.Layout, args.TransA, args.M, args.K)
	br, bc := rowMajor(args.Layout, args.TransB, args.K, args.N)
	cr, cc := rowMajor(args.Layout, native.NoTrans, args.M, args.N)
	a, status := matrix[T](args.A, ar, ac, opA)
	if status != native.Success {
		return status
	}
	b, status := matrix[T](args.B, br, bc, opB)
	if status != native.Success {
		return status
	}
	c, status := matrix[T](args.C, cr, cc, opC)
	if status != native.Success {
		return status
	}
	alpha, beta := conv(args.Alpha), conv(args.Beta)
	m, n, k := int(args.M), int(args.N), int(args.K)
	lda, ldb, ldc := int(args.A.LD), int(args.B.LD), int(args.C.LD)
	switch {
	case m == 0 || n == 0:
	case k == 0:
		scaleRows(c, int(cr), int(cc), ldc, beta)
	case args.Layout == native.RowMajor:
		kernel(transpose(args.TransA), transpose(args.TransB), m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
	default:
		kernel(transpose(args.TransB), transpose(args.TransA), n, m, k, alpha, b, ldb, a, lda, beta, c, ldc)
	}
	return native.Success
}

// symm mirrors gemm: in column-major order the row-major view of A is its
// transpose, so the side and the stored triangle both flip.
func symm[T clblast.Scalar, W any](args native.SymmArgs[W], conv func(W) T, kernel symmKernel[T]) native.Status {
	if args.Layout != native.RowMajor && args.Layout != native.ColMajor {
		return native.InvalidValue
	}
	order := args.M
	if args.Side == native.Right {
		order = args.N
	}
	br, bc := rowMajor(args.Layout, native.NoTrans, args.M, args.N)
	a, status := matrix[T](args.A, order, order, opA)
	if status != native.Success {
		return status
	}
	b, status := matrix[T](args.B, br, bc, opB)
	if status != native.Success {
		return status
	}
	c, status := matrix[T](args.C, br, bc, opC)
	if status != native.Success {
		return status
	}
	if args.M == 0 || args.N == 0 {
		return native.Success
	}
	side, uplo := blas.Left, blas.Upper
	if args.Side == native.Right {
		side = blas.Right
	}
	if args.Triangle == native.Lower {
		uplo = blas.Lower
	}
	m, n := int(args.M), int(args.N)
	if args.Layout == native.ColMajor {
		side, uplo = flipSide(side), flipUplo(uplo)
		m, n = n, m
	}
	kernel(side, uplo, m, n, conv(args.Alpha), a, int(args.A.LD), b, int(args.B.LD), conv(args.Beta), c, int(args.C.LD))
	return native.Success
}

func flipSide(s blas.Side) blas.Side {
	if s == blas.Left {
		return blas.Right
	}
	return blas.Left
}

func flipUplo(u blas.Uplo) blas.Uplo {
	if u == blas.Upper {
		return blas.Lower
	}
	return blas.Upper
}

func (a *API) Sgemm(call native.Call, args native.GemmArgs[float32]) native.Status {
	return a.exec("Sgemm", call, func() native.Status { return gemm(args, same[float32], a.impl.Sgemm) })
}

func (a *API) Dgemm(call native.Call, args native.GemmArgs[float64]) native.Status {
	return a.exec("Dgemm", call, func() native.Status { return gemm(args, same[float64], a.impl.Dgemm) })
}

func (a *API) Cgemm(call native.Call, args native.GemmArgs[native.Float2]) native.Status {
	return a.exec("Cgemm", call, func() native.Status { return gemm(args, clblast.FromFloat2, a.impl.Cgemm) })
}

func (a *API) Zgemm(call native.Call, args native.GemmArgs[native.Double2]) native.Status {
	return a.exec("Zgemm", call, func() native.Status { return gemm(args, clblast.FromDouble2, a.impl.Zgemm) })
}

func (a *API) Ssymm(call native.Call, args native.SymmArgs[float32]) native.Status {
	return a.exec("Ssymm", call, func() native.Status { return symm(args, same[float32], a.impl.Ssymm) })
}

func (a *API) Dsymm(call native.Call, args native.SymmArgs[float64]) native.Status {
	return a.exec("Dsymm", call, func() native.Status { return symm(args, same[float64], a.impl.Dsymm) })
}

func (a *API) Csymm(call native.Call, args native.SymmArgs[native.Float2]) native.Status {
	return a.exec("Csymm", call, func() native.Status { return symm(args, clblast.FromFloat2, a.impl.Csymm) })
}

func (a *API) Zsymm(call native.Call, args native.SymmArgs[native.Double2]) native.Status {
	return a.exec("Zsymm", call, func() native.Status { return symm(args, clblast.FromDouble2, a.impl.Zsymm) })
}
