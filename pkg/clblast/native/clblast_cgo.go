//go:build opencl
// +build opencl

package native

/*
#cgo linux LDFLAGS: -lclblast -lOpenCL
#cgo windows LDFLAGS: -lclblast -lOpenCL
#cgo darwin LDFLAGS: -lclblast -framework OpenCL
#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#include <clblast_c.h>
*/
import "C"

import "unsafe"

// library calls straight into libclblast. It holds no state; the kernel cache
// lives inside the C library.
type library struct{}

// Open returns the CLBlast entry points linked into this binary.
func Open() (API, error) {
	return library{}, nil
}

func queueOf(call Call) C.cl_command_queue {
	return C.cl_command_queue(call.Queue.CommandQueue())
}

func eventOf(call Call) *C.cl_event {
	if call.Event == nil {
		return nil
	}
	return (*C.cl_event)(unsafe.Pointer(call.Event))
}

func memOf(m Memory) C.cl_mem {
	return C.cl_mem(m.Mem())
}

func size(v uint64) C.size_t {
	return C.size_t(v)
}

func float2(v Float2) C.cl_float2 {
	return *(*C.cl_float2)(unsafe.Pointer(&v))
}

func double2(v Double2) C.cl_double2 {
	return *(*C.cl_double2)(unsafe.Pointer(&v))
}

func (library) Ssum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastSsum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dsum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDsum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Scsum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastScsum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dzsum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDzsum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Sasum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastSasum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dasum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDasum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Scasum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastScasum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dzasum(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDzasum(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Snrm2(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastSnrm2(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dnrm2(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDnrm2(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Scnrm2(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastScnrm2(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dznrm2(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDznrm2(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Isamax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastisamax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Idamax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastidamax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Icamax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlasticamax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Izamax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastizamax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Isamin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastisamin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Idamin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastidamin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Icamin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlasticamin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Izamin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastizamin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Ismax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastismax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Idmax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastidmax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Icmax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlasticmax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Izmax(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastizmax(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Ismin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastismin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Idmin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastidmin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Icmin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlasticmin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Izmin(call Call, a ReduceArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastizmin(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Sscal(call Call, a ScalArgs[float32]) Status {
	q := queueOf(call)
	return Status(C.CLBlastSscal(size(a.N), C.float(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Dscal(call Call, a ScalArgs[float64]) Status {
	q := queueOf(call)
	return Status(C.CLBlastDscal(size(a.N), C.double(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Cscal(call Call, a ScalArgs[Float2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastCscal(size(a.N), float2(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Zscal(call Call, a ScalArgs[Double2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastZscal(size(a.N), double2(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		&q, eventOf(call)))
}

func (library) Sswap(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastSswap(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Dswap(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDswap(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Cswap(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastCswap(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Zswap(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastZswap(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Scopy(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastScopy(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Dcopy(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDcopy(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Ccopy(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastCcopy(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Zcopy(call Call, a PairArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastZcopy(size(a.N),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Saxpy(call Call, a AxpyArgs[float32]) Status {
	q := queueOf(call)
	return Status(C.CLBlastSaxpy(size(a.N), C.float(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Daxpy(call Call, a AxpyArgs[float64]) Status {
	q := queueOf(call)
	return Status(C.CLBlastDaxpy(size(a.N), C.double(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Caxpy(call Call, a AxpyArgs[Float2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastCaxpy(size(a.N), float2(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Zaxpy(call Call, a AxpyArgs[Double2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastZaxpy(size(a.N), double2(a.Alpha),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Sdot(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastSdot(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Ddot(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastDdot(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Cdotu(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastCdotu(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Zdotu(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastZdotu(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Cdotc(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastCdotc(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Zdotc(call Call, a DotArgs) Status {
	q := queueOf(call)
	return Status(C.CLBlastZdotc(size(a.N),
		memOf(a.Out.Buffer), size(a.Out.Offset),
		memOf(a.X.Buffer), size(a.X.Offset), size(a.X.Inc),
		memOf(a.Y.Buffer), size(a.Y.Offset), size(a.Y.Inc),
		&q, eventOf(call)))
}

func (library) Sgemm(call Call, a GemmArgs[float32]) Status {
	q := queueOf(call)
	return Status(C.CLBlastSgemm(C.CLBlastLayout(a.Layout),
		C.CLBlastTranspose(a.TransA), C.CLBlastTranspose(a.TransB),
		size(a.M), size(a.N), size(a.K),
		C.float(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		C.float(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Dgemm(call Call, a GemmArgs[float64]) Status {
	q := queueOf(call)
	return Status(C.CLBlastDgemm(C.CLBlastLayout(a.Layout),
		C.CLBlastTranspose(a.TransA), C.CLBlastTranspose(a.TransB),
		size(a.M), size(a.N), size(a.K),
		C.double(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		C.double(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Cgemm(call Call, a GemmArgs[Float2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastCgemm(C.CLBlastLayout(a.Layout),
		C.CLBlastTranspose(a.TransA), C.CLBlastTranspose(a.TransB),
		size(a.M), size(a.N), size(a.K),
		float2(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		float2(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Zgemm(call Call, a GemmArgs[Double2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastZgemm(C.CLBlastLayout(a.Layout),
		C.CLBlastTranspose(a.TransA), C.CLBlastTranspose(a.TransB),
		size(a.M), size(a.N), size(a.K),
		double2(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		double2(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Ssymm(call Call, a SymmArgs[float32]) Status {
	q := queueOf(call)
	return Status(C.CLBlastSsymm(C.CLBlastLayout(a.Layout),
		C.CLBlastSide(a.Side), C.CLBlastTriangle(a.Triangle),
		size(a.M), size(a.N),
		C.float(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		C.float(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Dsymm(call Call, a SymmArgs[float64]) Status {
	q := queueOf(call)
	return Status(C.CLBlastDsymm(C.CLBlastLayout(a.Layout),
		C.CLBlastSide(a.Side), C.CLBlastTriangle(a.Triangle),
		size(a.M), size(a.N),
		C.double(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		C.double(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Csymm(call Call, a SymmArgs[Float2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastCsymm(C.CLBlastLayout(a.Layout),
		C.CLBlastSide(a.Side), C.CLBlastTriangle(a.Triangle),
		size(a.M), size(a.N),
		float2(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		float2(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) Zsymm(call Call, a SymmArgs[Double2]) Status {
	q := queueOf(call)
	return Status(C.CLBlastZsymm(C.CLBlastLayout(a.Layout),
		C.CLBlastSide(a.Side), C.CLBlastTriangle(a.Triangle),
		size(a.M), size(a.N),
		double2(a.Alpha),
		memOf(a.A.Buffer), size(a.A.Offset), size(a.A.LD),
		memOf(a.B.Buffer), size(a.B.Offset), size(a.B.LD),
		double2(a.Beta),
		memOf(a.C.Buffer), size(a.C.Offset), size(a.C.LD),
		&q, eventOf(call)))
}

func (library) ClearCache() Status {
	return Status(C.CLBlastClearCache())
}

func (library) FillCache(device Device) Status {
	return Status(C.CLBlastFillCache(C.cl_device_id(device.DeviceID())))
}

// headerStatusCodes reports the status values as compiled from clblast_c.h.
func headerStatusCodes() map[string]Status {
	return map[string]Status{
		"Success":                    Status(C.CLBlastSuccess),
		"OpenCLCompilerNotAvailable": Status(C.CLBlastOpenCLCompilerNotAvailable),
		"TempBufferAllocFailure":     Status(C.CLBlastTempBufferAllocFailure),
		"OpenCLOutOfResources":       Status(C.CLBlastOpenCLOutOfResources),
		"OpenCLOutOfHostMemory":      Status(C.CLBlastOpenCLOutOfHostMemory),
		"OpenCLBuildProgramFailure":  Status(C.CLBlastOpenCLBuildProgramFailure),
		"InvalidValue":               Status(C.CLBlastInvalidValue),
		"InvalidCommandQueue":        Status(C.CLBlastInvalidCommandQueue),
		"InvalidMemObject":           Status(C.CLBlastInvalidMemObject),
		"InvalidBinary":              Status(C.CLBlastInvalidBinary),
		"InvalidBuildOptions":        Status(C.CLBlastInvalidBuildOptions),
		"InvalidProgram":             Status(C.CLBlastInvalidProgram),
		"InvalidProgramExecutable":   Status(C.CLBlastInvalidProgramExecutable),
		"InvalidKernelName":          Status(C.CLBlastInvalidKernelName),
		"InvalidKernelDefinition":    Status(C.CLBlastInvalidKernelDefinition),
		"InvalidKernel":              Status(C.CLBlastInvalidKernel),
		"InvalidArgIndex":            Status(C.CLBlastInvalidArgIndex),
		"InvalidArgValue":            Status(C.CLBlastInvalidArgValue),
		"InvalidArgSize":             Status(C.CLBlastInvalidArgSize),
		"InvalidKernelArgs":          Status(C.CLBlastInvalidKernelArgs),
		"InvalidLocalNumDimensions":  Status(C.CLBlastInvalidLocalNumDimensions),
		"InvalidLocalThreadsTotal":   Status(C.CLBlastInvalidLocalThreadsTotal),
		"InvalidLocalThreadsDim":     Status(C.CLBlastInvalidLocalThreadsDim),
		"InvalidGlobalOffset":        Status(C.CLBlastInvalidGlobalOffset),
		"InvalidEventWaitList":       Status(C.CLBlastInvalidEventWaitList),
		"InvalidEvent":               Status(C.CLBlastInvalidEvent),
		"InvalidOperation":           Status(C.CLBlastInvalidOperation),
		"InvalidBufferSize":          Status(C.CLBlastInvalidBufferSize),
		"InvalidGlobalWorkSize":      Status(C.CLBlastInvalidGlobalWorkSize),
		"NotImplemented":             Status(C.CLBlastNotImplemented),
		"InvalidMatrixA":             Status(C.CLBlastInvalidMatrixA),
		"InvalidMatrixB":             Status(C.CLBlastInvalidMatrixB),
		"InvalidMatrixC":             Status(C.CLBlastInvalidMatrixC),
		"InvalidVectorX":             Status(C.CLBlastInvalidVectorX),
		"InvalidVectorY":             Status(C.CLBlastInvalidVectorY),
		"InvalidDimension":           Status(C.CLBlastInvalidDimension),
		"InvalidLeadDimA":            Status(C.CLBlastInvalidLeadDimA),
		"InvalidLeadDimB":            Status(C.CLBlastInvalidLeadDimB),
		"InvalidLeadDimC":            Status(C.CLBlastInvalidLeadDimC),
		"InvalidIncrementX":          Status(C.CLBlastInvalidIncrementX),
		"InvalidIncrementY":          Status(C.CLBlastInvalidIncrementY),
		"InsufficientMemoryA":        Status(C.CLBlastInsufficientMemoryA),
		"InsufficientMemoryB":        Status(C.CLBlastInsufficientMemoryB),
		"InsufficientMemoryC":        Status(C.CLBlastInsufficientMemoryC),
		"InsufficientMemoryX":        Status(C.CLBlastInsufficientMemoryX),
		"InsufficientMemoryY":        Status(C.CLBlastInsufficientMemoryY),
		"InsufficientMemoryTemp":     Status(C.CLBlastInsufficientMemoryTemp),
		"InvalidBatchCount":          Status(C.CLBlastInvalidBatchCount),
		"InvalidOverrideKernel":      Status(C.CLBlastInvalidOverrideKernel),
		"MissingOverrideParameter":   Status(C.CLBlastMissingOverrideParameter),
		"InvalidLocalMemUsage":       Status(C.CLBlastInvalidLocalMemUsage),
		"NoHalfPrecision":            Status(C.CLBlastNoHalfPrecision),
		"NoDoublePrecision":          Status(C.CLBlastNoDoublePrecision),
		"InvalidVectorScalar":        Status(C.CLBlastInvalidVectorScalar),
		"InsufficientMemoryScalar":   Status(C.CLBlastInsufficientMemoryScalar),
		"DatabaseError":              Status(C.CLBlastDatabaseError),
		"UnknownError":               Status(C.CLBlastUnknownError),
		"UnexpectedError":            Status(C.CLBlastUnexpectedError),
	}
}

// headerEnums reports the enum values as compiled from clblast_c.h.
func headerEnums() map[string]uint32 {
	return map[string]uint32{
		"RowMajor":  uint32(C.CLBlastLayoutRowMajor),
		"ColMajor":  uint32(C.CLBlastLayoutColMajor),
		"NoTrans":   uint32(C.CLBlastTransposeNo),
		"Trans":     uint32(C.CLBlastTransposeYes),
		"ConjTrans": uint32(C.CLBlastTransposeConjugate),
		"Upper":     uint32(C.CLBlastTriangleUpper),
		"Lower":     uint32(C.CLBlastTriangleLower),
		"Left":      uint32(C.CLBlastSideLeft),
		"Right":     uint32(C.CLBlastSideRight),
	}
}
