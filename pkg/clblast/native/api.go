// Package native is the call boundary to the CLBlast C library.
//
// Every CLBlast routine used by package clblast has exactly one method on API,
// named after the C symbol without its CLBlast prefix. Arguments are passed as
// already-validated structs and scalars in their wire representation; the
// method returns the raw status code without interpreting it.
//
// The cgo implementation is compiled with the "opencl" build tag and links
// against libclblast and libOpenCL:
//
//	go build -tags opencl
//
// Without the tag, Open returns ErrNotBuilt.
package native

import "errors"

// ErrNotBuilt indicates the binary was built without the native library.
var ErrNotBuilt = errors.New("clblast: native library support requires building with '-tags opencl'")

// API is the set of CLBlast entry points.
type API interface {
	Ssum(call Call, args ReduceArgs) Status
	Dsum(call Call, args ReduceArgs) Status
	Scsum(call Call, args ReduceArgs) Status
	Dzsum(call Call, args ReduceArgs) Status

	Sasum(call Call, args ReduceArgs) Status
	Dasum(call Call, args ReduceArgs) Status
	Scasum(call Call, args ReduceArgs) Status
	Dzasum(call Call, args ReduceArgs) Status

	Snrm2(call Call, args ReduceArgs) Status
	Dnrm2(call Call, args ReduceArgs) Status
	Scnrm2(call Call, args ReduceArgs) Status
	Dznrm2(call Call, args ReduceArgs) Status

	Isamax(call Call, args ReduceArgs) Status
	Idamax(call Call, args ReduceArgs) Status
	Icamax(call Call, args ReduceArgs) Status
	Izamax(call Call, args ReduceArgs) Status

	Isamin(call Call, args ReduceArgs) Status
	Idamin(call Call, args ReduceArgs) Status
	Icamin(call Call, args ReduceArgs) Status
	Izamin(call Call, args ReduceArgs) Status

	Ismax(call Call, args ReduceArgs) Status
	Idmax(call Call, args ReduceArgs) Status
	Icmax(call Call, args ReduceArgs) Status
	Izmax(call Call, args ReduceArgs) Status

	Ismin(call Call, args ReduceArgs) Status
	Idmin(call Call, args ReduceArgs) Status
	Icmin(call Call, args ReduceArgs) Status
	Izmin(call Call, args ReduceArgs) Status

	Sscal(call Call, args ScalArgs[float32]) Status
	Dscal(call Call, args ScalArgs[float64]) Status
	Cscal(call Call, args ScalArgs[Float2]) Status
	Zscal(call Call, args ScalArgs[Double2]) Status

	Sswap(call Call, args PairArgs) Status
	Dswap(call Call, args PairArgs) Status
	Cswap(call Call, args PairArgs) Status
	Zswap(call Call, args PairArgs) Status

	Scopy(call Call, args PairArgs) Status
	Dcopy(call Call, args PairArgs) Status
	Ccopy(call Call, args PairArgs) Status
	Zcopy(call Call, args PairArgs) Status

	Saxpy(call Call, args AxpyArgs[float32]) Status
	Daxpy(call Call, args AxpyArgs[float64]) Status
	Caxpy(call Call, args AxpyArgs[Float2]) Status
	Zaxpy(call Call, args AxpyArgs[Double2]) Status

	Sdot(call Call, args DotArgs) Status
	Ddot(call Call, args DotArgs) Status
	Cdotu(call Call, args DotArgs) Status
	Zdotu(call Call, args DotArgs) Status
	Cdotc(call Call, args DotArgs) Status
	Zdotc(call Call, args DotArgs) Status

	Sgemm(call Call, args GemmArgs[float32]) Status
	Dgemm(call Call, args GemmArgs[float64]) Status
	Cgemm(call Call, args GemmArgs[Float2]) Status
	Zgemm(call Call, args GemmArgs[Double2]) Status

	Ssymm(call Call, args SymmArgs[float32]) Status
	Dsymm(call Call, args SymmArgs[float64]) Status
	Csymm(call Call, args SymmArgs[Float2]) Status
	Zsymm(call Call, args SymmArgs[Double2]) Status

	// ClearCache drops the library-wide cache of compiled kernels.
	ClearCache() Status
	// FillCache compiles and caches the kernels for device.
	FillCache(device Device) Status
}
