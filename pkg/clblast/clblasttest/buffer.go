// Package clblasttest provides host-memory stand-ins for the OpenCL handles
// and a native.API that executes every routine on the host through gonum.
// It lets the clblast package be exercised without a device.
package clblasttest

import (
	"fmt"
	"unsafe"

	"github.com/fxnlabs/clblast/pkg/clblast"
)

// Buffer is host memory posing as a cl_mem. The fake API reads and writes
// Data directly.
type Buffer[T clblast.Element] struct {
	Data []T
}

// NewBuffer allocates a zeroed buffer of n elements.
func NewBuffer[T clblast.Element](n int) *Buffer[T] {
	return &Buffer[T]{Data: make([]T, n)}
}

// BufferOf copies data into a new buffer.
func BufferOf[T clblast.Element](data ...T) *Buffer[T] {
	return &Buffer[T]{Data: append([]T(nil), data...)}
}

func (b *Buffer[T]) Mem() unsafe.Pointer { return unsafe.Pointer(b) }
func (b *Buffer[T]) Len() int            { return len(b.Data) }

// Write copies data to the front of the buffer, like a blocking
// clEnqueueWriteBuffer.
func (b *Buffer[T]) Write(data []T) error {
	if len(data) > len(b.Data) {
		return fmt.Errorf("clblasttest: write of %d elements into buffer of %d", len(data), len(b.Data))
	}
	copy(b.Data, data)
	return nil
}

func (b *Buffer[T]) Read(dst []T) error {
	if len(dst) > len(b.Data) {
		return fmt.Errorf("clblasttest: read of %d elements from buffer of %d", len(dst), len(b.Data))
	}
	copy(dst, b.Data)
	return nil
}

// Release is a no-op; host buffers are garbage collected.
func (b *Buffer[T]) Release() {}

// Vector views the buffer as a clblast vector.
func (b *Buffer[T]) Vector() clblast.VectorBuffer[T] {
	return clblast.NewVector[T](b)
}

// Queue is a stand-in command queue. The zero value is usable.
type Queue struct {
	Name string
}

func (q *Queue) CommandQueue() unsafe.Pointer { return unsafe.Pointer(q) }

// Device is a stand-in device.
type Device struct {
	Name string
}

func (d *Device) DeviceID() unsafe.Pointer { return unsafe.Pointer(d) }

// NullQueue reports a nil handle, as an unset cl_command_queue would.
type NullQueue struct{}

func (NullQueue) CommandQueue() unsafe.Pointer { return nil }
