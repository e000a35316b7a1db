//go:build opencl

package opencl

/*
#cgo !darwin LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL
#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif

static cl_command_queue clblast_create_queue(cl_context ctx, cl_device_id device, cl_int *status) {
	return clCreateCommandQueue(ctx, device, 0, status);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

// platformNotFoundKHR is what the ICD loader reports when no platform is installed.
const platformNotFoundKHR = -1001

// Runtime owns the OpenCL context and the in-order command queue of one device.
type Runtime struct {
	platformID C.cl_platform_id
	deviceID   C.cl_device_id
	context    C.cl_context
	queue      C.cl_command_queue
	Platform   PlatformInfo
	Device     DeviceInfo
}

// Open creates a context and command queue on the device chosen by Select.
func Open(platform, device int) (*Runtime, error) {
	records, err := enumeratePlatformRecords()
	if err != nil {
		return nil, err
	}
	infos := make([]PlatformInfo, len(records))
	for i, rec := range records {
		infos[i] = rec.info
	}
	pi, di, err := Select(infos, platform, device)
	if err != nil {
		return nil, err
	}
	chosenPlatform, chosenDevice := records[pi], records[pi].devices[di]

	var status C.cl_int
	context := C.clCreateContext(nil, 1, &chosenDevice.id, nil, nil, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateContext", status)
	}

	queue := C.clblast_create_queue(context, chosenDevice.id, &status)
	if status != C.CL_SUCCESS {
		C.clReleaseContext(context)
		return nil, statusError("clCreateCommandQueue", status)
	}

	return &Runtime{
		platformID: chosenPlatform.id,
		deviceID:   chosenDevice.id,
		context:    context,
		queue:      queue,
		Platform:   chosenPlatform.info,
		Device:     chosenDevice.info,
	}, nil
}

// CommandQueue implements clblast.CommandQueue.
func (r *Runtime) CommandQueue() unsafe.Pointer { return unsafe.Pointer(r.queue) }

// DeviceID implements clblast.Device.
func (r *Runtime) DeviceID() unsafe.Pointer { return unsafe.Pointer(r.deviceID) }

// Finish blocks until every command enqueued on the runtime's queue completed.
func (r *Runtime) Finish() error {
	if status := C.clFinish(r.queue); status != C.CL_SUCCESS {
		return statusError("clFinish", status)
	}
	return nil
}

// Close releases OpenCL resources.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.queue != nil {
		C.clReleaseCommandQueue(r.queue)
		r.queue = nil
	}
	if r.context != nil {
		C.clReleaseContext(r.context)
		r.context = nil
	}
}

// Buffer is a device buffer of n elements of T.
type Buffer[T clblast.Element] struct {
	rt  *Runtime
	mem C.cl_mem
	n   int
}

func elementSize[T clblast.Element]() C.size_t {
	var zero T
	return C.size_t(unsafe.Sizeof(zero))
}

// NewBuffer allocates an uninitialised read-write buffer of n elements.
func NewBuffer[T clblast.Element](rt *Runtime, n int) (*Buffer[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("buffer length must be positive, got %d", n)
	}
	var status C.cl_int
	mem := C.clCreateBuffer(rt.context, C.CL_MEM_READ_WRITE, C.size_t(n)*elementSize[T](), nil, &status)
	if status != C.CL_SUCCESS {
		return nil, statusError("clCreateBuffer", status)
	}
	return &Buffer[T]{rt: rt, mem: mem, n: n}, nil
}

// NewBufferFrom allocates a buffer sized to data and uploads it.
func NewBufferFrom[T clblast.Element](rt *Runtime, data []T) (*Buffer[T], error) {
	b, err := NewBuffer[T](rt, len(data))
	if err != nil {
		return nil, err
	}
	if err := b.Write(data); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *Buffer[T]) Mem() unsafe.Pointer { return unsafe.Pointer(b.mem) }
func (b *Buffer[T]) Len() int            { return b.n }

// Vector views the buffer as a clblast vector.
func (b *Buffer[T]) Vector() clblast.VectorBuffer[T] {
	return clblast.NewVector[T](b)
}

// Write uploads data to the start of the buffer and blocks until done.
func (b *Buffer[T]) Write(data []T) error {
	if len(data) > b.n {
		return fmt.Errorf("write of %d elements exceeds buffer of %d", len(data), b.n)
	}
	if len(data) == 0 {
		return nil
	}
	status := C.clEnqueueWriteBuffer(b.rt.queue, b.mem, C.CL_TRUE, 0,
		C.size_t(len(data))*elementSize[T](), unsafe.Pointer(&data[0]), 0, nil, nil)
	if status != C.CL_SUCCESS {
		return statusError("clEnqueueWriteBuffer", status)
	}
	return nil
}

// Read downloads len(dst) elements from the start of the buffer. The queue is
// in order, so the read observes every routine enqueued before it.
func (b *Buffer[T]) Read(dst []T) error {
	if len(dst) > b.n {
		return fmt.Errorf("read of %d elements exceeds buffer of %d", len(dst), b.n)
	}
	if len(dst) == 0 {
		return nil
	}
	status := C.clEnqueueReadBuffer(b.rt.queue, b.mem, C.CL_TRUE, 0,
		C.size_t(len(dst))*elementSize[T](), unsafe.Pointer(&dst[0]), 0, nil, nil)
	if status != C.CL_SUCCESS {
		return statusError("clEnqueueReadBuffer", status)
	}
	return nil
}

// Release frees the device memory.
func (b *Buffer[T]) Release() {
	if b == nil || b.mem == nil {
		return
	}
	C.clReleaseMemObject(b.mem)
	b.mem = nil
}

// Wait blocks on the event a routine filled in and then releases it.
func Wait(ev *clblast.Event) error {
	if !ev.Valid() {
		return errors.New("wait on an event no routine has filled")
	}
	handle := C.cl_event(ev.Handle())
	status := C.clWaitForEvents(1, &handle)
	C.clReleaseEvent(handle)
	ev.Reset()
	if status != C.CL_SUCCESS {
		return statusError("clWaitForEvents", status)
	}
	return nil
}

// EnumeratePlatforms returns discovered platforms with their devices.
func EnumeratePlatforms() ([]PlatformInfo, error) {
	records, err := enumeratePlatformRecords()
	if err != nil {
		return nil, err
	}
	out := make([]PlatformInfo, len(records))
	for i, platform := range records {
		out[i] = platform.info
	}
	return out, nil
}

type platformRecord struct {
	id      C.cl_platform_id
	info    PlatformInfo
	devices []deviceRecord
}

type deviceRecord struct {
	id   C.cl_device_id
	info DeviceInfo
}

func enumeratePlatformRecords() ([]platformRecord, error) {
	var count C.cl_uint
	status := C.clGetPlatformIDs(0, nil, &count)
	if status == platformNotFoundKHR {
		return nil, ErrNoDevices
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(count)", status)
	}
	if count == 0 {
		return nil, ErrNoDevices
	}

	platformIDs := make([]C.cl_platform_id, int(count))
	status = C.clGetPlatformIDs(count, &platformIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(list)", status)
	}

	records := make([]platformRecord, 0, int(count))
	for _, pid := range platformIDs {
		var info PlatformInfo
		for _, field := range []struct {
			param C.cl_platform_info
			dst   *string
		}{
			{C.CL_PLATFORM_NAME, &info.Name},
			{C.CL_PLATFORM_VENDOR, &info.Vendor},
			{C.CL_PLATFORM_VERSION, &info.Version},
		} {
			value, err := getPlatformString(pid, field.param)
			if err != nil {
				return nil, err
			}
			*field.dst = value
		}

		rec := platformRecord{id: pid, info: info}
		devices, err := enumerateDevices(pid)
		if err != nil && !errors.Is(err, ErrNoDevices) {
			return nil, err
		}
		rec.devices = devices
		rec.info.Devices = make([]DeviceInfo, len(devices))
		for i, device := range devices {
			rec.info.Devices[i] = device.info
		}
		records = append(records, rec)
	}
	return records, nil
}

func enumerateDevices(platform C.cl_platform_id) ([]deviceRecord, error) {
	var count C.cl_uint
	status := C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, 0, nil, &count)
	if status == C.CL_DEVICE_NOT_FOUND {
		return nil, ErrNoDevices
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(count)", status)
	}
	if count == 0 {
		return nil, ErrNoDevices
	}

	deviceIDs := make([]C.cl_device_id, int(count))
	status = C.clGetDeviceIDs(platform, C.CL_DEVICE_TYPE_ALL, count, &deviceIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(list)", status)
	}

	devices := make([]deviceRecord, 0, int(count))
	for _, id := range deviceIDs {
		info, err := buildDeviceInfo(id)
		if err != nil {
			return nil, err
		}
		devices = append(devices, deviceRecord{id: id, info: info})
	}
	return devices, nil
}

func buildDeviceInfo(id C.cl_device_id) (DeviceInfo, error) {
	var info DeviceInfo
	for _, field := range []struct {
		param C.cl_device_info
		dst   *string
	}{
		{C.CL_DEVICE_NAME, &info.Name},
		{C.CL_DEVICE_VENDOR, &info.Vendor},
		{C.CL_DEVICE_VERSION, &info.Version},
	} {
		value, err := getDeviceString(id, field.param)
		if err != nil {
			return DeviceInfo{}, err
		}
		*field.dst = value
	}

	var rawType C.cl_device_type
	if err := getDeviceValue(id, C.CL_DEVICE_TYPE, unsafe.Pointer(&rawType), C.size_t(unsafe.Sizeof(rawType))); err != nil {
		return DeviceInfo{}, err
	}
	var computeUnits C.cl_uint
	if err := getDeviceValue(id, C.CL_DEVICE_MAX_COMPUTE_UNITS, unsafe.Pointer(&computeUnits), C.size_t(unsafe.Sizeof(computeUnits))); err != nil {
		return DeviceInfo{}, err
	}
	var globalMem C.cl_ulong
	if err := getDeviceValue(id, C.CL_DEVICE_GLOBAL_MEM_SIZE, unsafe.Pointer(&globalMem), C.size_t(unsafe.Sizeof(globalMem))); err != nil {
		return DeviceInfo{}, err
	}
	var fp64 C.cl_device_fp_config
	if err := getDeviceValue(id, C.CL_DEVICE_DOUBLE_FP_CONFIG, unsafe.Pointer(&fp64), C.size_t(unsafe.Sizeof(fp64))); err != nil {
		// Devices without the cl_khr_fp64 extension may reject the query.
		fp64 = 0
	}

	info.Type = mapDeviceType(rawType)
	info.MaxComputeUnits = uint32(computeUnits)
	info.GlobalMemBytes = uint64(globalMem)
	info.DoublePrecision = fp64 != 0
	return info, nil
}

func getDeviceValue(id C.cl_device_id, param C.cl_device_info, dst unsafe.Pointer, size C.size_t) error {
	if status := C.clGetDeviceInfo(id, param, size, dst, nil); status != C.CL_SUCCESS {
		return statusError("clGetDeviceInfo", status)
	}
	return nil
}

func getPlatformString(id C.cl_platform_id, param C.cl_platform_info) (string, error) {
	var size C.size_t
	status := C.clGetPlatformInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetPlatformInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(value)", status)
	}
	return trimNull(buf), nil
}

func getDeviceString(id C.cl_device_id, param C.cl_device_info) (string, error) {
	var size C.size_t
	status := C.clGetDeviceInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetDeviceInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(value)", status)
	}
	return trimNull(buf), nil
}

func trimNull(buf []byte) string {
	if len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

func mapDeviceType(dt C.cl_device_type) DeviceType {
	switch {
	case dt&C.CL_DEVICE_TYPE_GPU != 0:
		return DeviceTypeGPU
	case dt&C.CL_DEVICE_TYPE_CPU != 0:
		return DeviceTypeCPU
	case dt&C.CL_DEVICE_TYPE_ACCELERATOR != 0:
		return DeviceTypeAccelerator
	case dt&C.CL_DEVICE_TYPE_DEFAULT != 0:
		return DeviceTypeDefault
	default:
		return DeviceTypeUnknown
	}
}

// statusError reuses the CLBlast translator: its first tier mirrors the
// OpenCL runtime codes.
func statusError(prefix string, status C.cl_int) error {
	return fmt.Errorf("%s: %w", prefix, clblast.Translate(native.Status(status)))
}
