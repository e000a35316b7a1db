package clblasttest

import (
	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

func reduce[T clblast.Scalar, R clblast.Element](args native.ReduceArgs, fn func(n int, x []T, inc int) R) native.Status {
	x, inc, status := vector[T](args.X, args.N, opX)
	if status != native.Success {
		return status
	}
	out, status := result[R](args.Out)
	if status != native.Success {
		return status
	}
	out[0] = fn(int(args.N), x, inc)
	return native.Success
}

func sum[T clblast.Scalar](n int, x []T, inc int) T {
	var acc T
	for i := 0; i < n; i++ {
		acc += x[i*inc]
	}
	return acc
}

// extremum returns the first index whose key is the largest (or smallest).
func extremum[T clblast.Scalar](abs, largest bool) func(n int, x []T, inc int) uint32 {
	return func(n int, x []T, inc int) uint32 {
		best := 0
		for i := 1; i < n; i++ {
			k, b := magnitude(x[i*inc], abs), magnitude(x[best*inc], abs)
			if (largest && k > b) || (!largest && k < b) {
				best = i
			}
		}
		return uint32(best)
	}
}

func index(i int) uint32 {
	if i < 0 {
		return 0
	}
	return uint32(i)
}

func pair[T clblast.Scalar](args native.PairArgs, fn func(n int, x []T, incX int, y []T, incY int)) native.Status {
	x, incX, status := vector[T](args.X, args.N, opX)
	if status != native.Success {
		return status
	}
	y, incY, status := vector[T](args.Y, args.N, opY)
	if status != native.Success {
		return status
	}
	if args.N > 0 {
		fn(int(args.N), x, incX, y, incY)
	}
	return native.Success
}

func dot[T clblast.Scalar](args native.DotArgs, fn func(n int, x []T, incX int, y []T, incY int) T) native.Status {
	x, incX, status := vector[T](args.X, args.N, opX)
	if status != native.Success {
		return status
	}
	y, incY, status := vector[T](args.Y, args.N, opY)
	if status != native.Success {
		return status
	}
	out, status := result[T](args.Out)
	if status != native.Success {
		return status
	}
	var zero T
	out[0] = zero
	if args.N > 0 {
		out[0] = fn(int(args.N), x, incX, y, incY)
	}
	return native.Success
}

func scal[T clblast.Scalar, W any](args native.ScalArgs[W], conv func(W) T, fn func(n int, alpha T, x []T, incX int)) native.Status {
	x, inc, status := vector[T](args.X, args.N, opX)
	if status != native.Success {
		return status
	}
	if args.N > 0 {
		fn(int(args.N), conv(args.Alpha), x, inc)
	}
	return native.Success
}

func axpy[T clblast.Scalar, W any](args native.AxpyArgs[W], conv func(W) T, fn func(n int, alpha T, x []T, incX int, y []T, incY int)) native.Status {
	return pair(native.PairArgs{N: args.N, X: args.X, Y: args.Y}, func(n int, x []T, incX int, y []T, incY int) {
		fn(n, conv(args.Alpha), x, incX, y, incY)
	})
}

func same[T any](v T) T { return v }

func (a *API) Ssum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Ssum", call, func() native.Status { return reduce(args, sum[float32]) })
}

func (a *API) Dsum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dsum", call, func() native.Status { return reduce(args, sum[float64]) })
}

func (a *API) Scsum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Scsum", call, func() native.Status { return reduce(args, sum[complex64]) })
}

func (a *API) Dzsum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dzsum", call, func() native.Status { return reduce(args, sum[complex128]) })
}

func (a *API) Sasum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Sasum", call, func() native.Status { return reduce(args, a.impl.Sasum) })
}

func (a *API) Dasum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dasum", call, func() native.Status { return reduce(args, a.impl.Dasum) })
}

func (a *API) Scasum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Scasum", call, func() native.Status {
		return reduce(args, func(n int, x []complex64, inc int) complex64 {
			return fromReal[complex64](float64(a.impl.Scasum(n, x, inc)))
		})
	})
}

func (a *API) Dzasum(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dzasum", call, func() native.Status {
		return reduce(args, func(n int, x []complex128, inc int) complex128 {
			return fromReal[complex128](a.impl.Dzasum(n, x, inc))
		})
	})
}

func (a *API) Snrm2(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Snrm2", call, func() native.Status { return reduce(args, a.impl.Snrm2) })
}

func (a *API) Dnrm2(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dnrm2", call, func() native.Status { return reduce(args, a.impl.Dnrm2) })
}

func (a *API) Scnrm2(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Scnrm2", call, func() native.Status {
		return reduce(args, func(n int, x []complex64, inc int) complex64 {
			return fromReal[complex64](float64(a.impl.Scnrm2(n, x, inc)))
		})
	})
}

func (a *API) Dznrm2(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("Dznrm2", call, func() native.Status {
		return reduce(args, func(n int, x []complex128, inc int) complex128 {
			return fromReal[complex128](a.impl.Dznrm2(n, x, inc))
		})
	})
}

func (a *API) Isamax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iSamax", call, func() native.Status {
		return reduce(args, func(n int, x []float32, inc int) uint32 { return index(a.impl.Isamax(n, x, inc)) })
	})
}

func (a *API) Idamax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iDamax", call, func() native.Status {
		return reduce(args, func(n int, x []float64, inc int) uint32 { return index(a.impl.Idamax(n, x, inc)) })
	})
}

func (a *API) Icamax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iCamax", call, func() native.Status {
		return reduce(args, func(n int, x []complex64, inc int) uint32 { return index(a.impl.Icamax(n, x, inc)) })
	})
}

func (a *API) Izamax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iZamax", call, func() native.Status {
		return reduce(args, func(n int, x []complex128, inc int) uint32 { return index(a.impl.Izamax(n, x, inc)) })
	})
}

func (a *API) Isamin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iSamin", call, func() native.Status { return reduce(args, extremum[float32](true, false)) })
}

func (a *API) Idamin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iDamin", call, func() native.Status { return reduce(args, extremum[float64](true, false)) })
}

func (a *API) Icamin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iCamin", call, func() native.Status { return reduce(args, extremum[complex64](true, false)) })
}

func (a *API) Izamin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iZamin", call, func() native.Status { return reduce(args, extremum[complex128](true, false)) })
}

func (a *API) Ismax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iSmax", call, func() native.Status { return reduce(args, extremum[float32](false, true)) })
}

func (a *API) Idmax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iDmax", call, func() native.Status { return reduce(args, extremum[float64](false, true)) })
}

func (a *API) Icmax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iCmax", call, func() native.Status { return reduce(args, extremum[complex64](false, true)) })
}

func (a *API) Izmax(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iZmax", call, func() native.Status { return reduce(args, extremum[complex128](false, true)) })
}

func (a *API) Ismin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iSmin", call, func() native.Status { return reduce(args, extremum[float32](false, false)) })
}

func (a *API) Idmin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iDmin", call, func() native.Status { return reduce(args, extremum[float64](false, false)) })
}

func (a *API) Icmin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iCmin", call, func() native.Status { return reduce(args, extremum[complex64](false, false)) })
}

func (a *API) Izmin(call native.Call, args native.ReduceArgs) native.Status {
	return a.exec("iZmin", call, func() native.Status { return reduce(args, extremum[complex128](false, false)) })
}

func (a *API) Sscal(call native.Call, args native.ScalArgs[float32]) native.Status {
	return a.exec("Sscal", call, func() native.Status { return scal(args, same[float32], a.impl.Sscal) })
}

func (a *API) Dscal(call native.Call, args native.ScalArgs[float64]) native.Status {
	return a.exec("Dscal", call, func() native.Status { return scal(args, same[float64], a.impl.Dscal) })
}

func (a *API) Cscal(call native.Call, args native.ScalArgs[native.Float2]) native.Status {
	return a.exec("Cscal", call, func() native.Status { return scal(args, clblast.FromFloat2, a.impl.Cscal) })
}

func (a *API) Zscal(call native.Call, args native.ScalArgs[native.Double2]) native.Status {
	return a.exec("Zscal", call, func() native.Status { return scal(args, clblast.FromDouble2, a.impl.Zscal) })
}

func (a *API) Sswap(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Sswap", call, func() native.Status { return pair(args, a.impl.Sswap) })
}

func (a *API) Dswap(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Dswap", call, func() native.Status { return pair(args, a.impl.Dswap) })
}

func (a *API) Cswap(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Cswap", call, func() native.Status { return pair(args, a.impl.Cswap) })
}

func (a *API) Zswap(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Zswap", call, func() native.Status { return pair(args, a.impl.Zswap) })
}

func (a *API) Scopy(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Scopy", call, func() native.Status { return pair(args, a.impl.Scopy) })
}

func (a *API) Dcopy(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Dcopy", call, func() native.Status { return pair(args, a.impl.Dcopy) })
}

func (a *API) Ccopy(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Ccopy", call, func() native.Status { return pair(args, a.impl.Ccopy) })
}

func (a *API) Zcopy(call native.Call, args native.PairArgs) native.Status {
	return a.exec("Zcopy", call, func() native.Status { return pair(args, a.impl.Zcopy) })
}

func (a *API) Saxpy(call native.Call, args native.AxpyArgs[float32]) native.Status {
	return a.exec("Saxpy", call, func() native.Status { return axpy(args, same[float32], a.impl.Saxpy) })
}

func (a *API) Daxpy(call native.Call, args native.AxpyArgs[float64]) native.Status {
	return a.exec("Daxpy", call, func() native.Status { return axpy(args, same[float64], a.impl.Daxpy) })
}

func (a *API) Caxpy(call native.Call, args native.AxpyArgs[native.Float2]) native.Status {
	return a.exec("Caxpy", call, func() native.Status { return axpy(args, clblast.FromFloat2, a.impl.Caxpy) })
}

func (a *API) Zaxpy(call native.Call, args native.AxpyArgs[native.Double2]) native.Status {
	return a.exec("Zaxpy", call, func() native.Status { return axpy(args, clblast.FromDouble2, a.impl.Zaxpy) })
}

func (a *API) Sdot(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Sdot", call, func() native.Status { return dot(args, a.impl.Sdot) })
}

func (a *API) Ddot(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Ddot", call, func() native.Status { return dot(args, a.impl.Ddot) })
}

func (a *API) Cdotu(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Cdotu", call, func() native.Status { return dot(args, a.impl.Cdotu) })
}

func (a *API) Zdotu(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Zdotu", call, func() native.Status { return dot(args, a.impl.Zdotu) })
}

func (a *API) Cdotc(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Cdotc", call, func() native.Status { return dot(args, a.impl.Cdotc) })
}

func (a *API) Zdotc(call native.Call, args native.DotArgs) native.Status {
	return a.exec("Zdotc", call, func() native.Status { return dot(args, a.impl.Zdotc) })
}
