package bench

import (
	"github.com/fxnlabs/clblast/internal/opencl"
	"github.com/fxnlabs/clblast/pkg/clblast"
)

// Buffer is a float32 device buffer the benchmark can fill and read back.
type Buffer interface {
	clblast.Memory

	// Write copies data into the buffer, blocking until the transfer is done.
	Write(data []float32) error

	// Read copies the buffer into dst, blocking until the transfer is done.
	Read(dst []float32) error

	// Release frees the device allocation.
	Release()
}

// Backend is the device the benchmark runs on.
//
// Implementation notes:
//   - Alloc returns zero-filled buffers of n elements
//   - Wait blocks until the routine that filled ev has completed and releases ev
//   - Finish drains the queue; it is called once per timed run
type Backend interface {
	clblast.CommandQueue

	// Name describes the device for logs and tables.
	Name() string

	Alloc(n int) (Buffer, error)
	Wait(ev *clblast.Event) error
	Finish() error
}

// OpenCL adapts an opened runtime to Backend.
func OpenCL(rt *opencl.Runtime, name string) Backend {
	return &openclBackend{Runtime: rt, name: name}
}

type openclBackend struct {
	*opencl.Runtime
	name string
}

func (b *openclBackend) Name() string { return b.name }

func (b *openclBackend) Alloc(n int) (Buffer, error) {
	// clCreateBuffer leaves the contents undefined.
	buf, err := opencl.NewBufferFrom(b.Runtime, make([]float32, n))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (b *openclBackend) Wait(ev *clblast.Event) error {
	return opencl.Wait(ev)
}
