//go:build !opencl

package opencl

import (
	"unsafe"

	"github.com/fxnlabs/clblast/pkg/clblast"
)

// Runtime is a placeholder when OpenCL support is not compiled.
type Runtime struct {
	Platform PlatformInfo
	Device   DeviceInfo
}

// Open returns an error when OpenCL support is not compiled in.
func Open(platform, device int) (*Runtime, error) {
	return nil, ErrNotBuilt
}

// EnumeratePlatforms returns an error when OpenCL support is not compiled in.
func EnumeratePlatforms() ([]PlatformInfo, error) {
	return nil, ErrNotBuilt
}

func (r *Runtime) CommandQueue() unsafe.Pointer { return nil }
func (r *Runtime) DeviceID() unsafe.Pointer     { return nil }
func (r *Runtime) Finish() error                { return ErrNotBuilt }
func (r *Runtime) Close()                       {}

// Buffer is a placeholder device buffer.
type Buffer[T clblast.Element] struct{}

func NewBuffer[T clblast.Element](rt *Runtime, n int) (*Buffer[T], error) {
	return nil, ErrNotBuilt
}

func NewBufferFrom[T clblast.Element](rt *Runtime, data []T) (*Buffer[T], error) {
	return nil, ErrNotBuilt
}

func (b *Buffer[T]) Mem() unsafe.Pointer  { return nil }
func (b *Buffer[T]) Len() int             { return 0 }
func (b *Buffer[T]) Write(data []T) error { return ErrNotBuilt }
func (b *Buffer[T]) Read(dst []T) error   { return ErrNotBuilt }
func (b *Buffer[T]) Vector() clblast.VectorBuffer[T] {
	return clblast.NewVector[T](b)
}
func (b *Buffer[T]) Release() {}

// Wait returns an error when OpenCL support is not compiled in.
func Wait(ev *clblast.Event) error {
	return ErrNotBuilt
}
