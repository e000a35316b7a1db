package clblast

import (
	"fmt"
	"math"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

type (
	// CommandQueue is an OpenCL command queue owned by the caller.
	CommandQueue = native.CommandQueue
	// Memory is an OpenCL memory object owned by the caller.
	Memory = native.Memory
	// Device is an OpenCL device owned by the caller.
	Device = native.Device
)

// VectorBuffer is a typed view over a device buffer, starting at an element
// offset. It does not own the memory.
type VectorBuffer[T Element] struct {
	mem    Memory
	offset int
}

// NewVector views mem as a vector of T starting at element 0.
func NewVector[T Element](mem Memory) VectorBuffer[T] {
	return VectorBuffer[T]{mem: mem}
}

// WithOffset returns a copy of v starting at element offset.
func (v VectorBuffer[T]) WithOffset(offset int) VectorBuffer[T] {
	v.offset = offset
	return v
}

func (v VectorBuffer[T]) Memory() Memory { return v.mem }
func (v VectorBuffer[T]) Offset() int    { return v.offset }

// Len is the capacity of the underlying buffer in elements, ignoring the offset.
func (v VectorBuffer[T]) Len() int {
	if v.mem == nil {
		return 0
	}
	return v.mem.Len()
}

func (v VectorBuffer[T]) vector(inc int) native.Vector {
	return native.Vector{Buffer: v.mem, Offset: uint64(v.offset), Inc: uint64(inc)}
}

func (v VectorBuffer[T]) result() native.Result {
	return native.Result{Buffer: v.mem, Offset: uint64(v.offset)}
}

// IndexBuffer receives the index written by the extremum-index routines.
type IndexBuffer = VectorBuffer[uint32]

// MatrixBuffer is a rows×columns view over a device buffer. The stride is the
// distance in elements between consecutive rows (row-major) or columns
// (column-major). It does not own the memory.
type MatrixBuffer[T Scalar] struct {
	mem     Memory
	rows    int
	columns int
	layout  Layout
	stride  int
	offset  int
}

// DefaultStride is the dense stride for a rows×columns matrix: columns for
// row-major storage, rows for column-major.
func DefaultStride(rows, columns int, layout Layout) int {
	if layout == ColumnMajor {
		return rows
	}
	return columns
}

// NewMatrix views mem as a dense rows×columns matrix.
func NewMatrix[T Scalar](mem Memory, rows, columns int, layout Layout) (MatrixBuffer[T], error) {
	m := MatrixBuffer[T]{
		mem:     mem,
		rows:    rows,
		columns: columns,
		layout:  layout,
		stride:  DefaultStride(rows, columns, layout),
	}
	if mem == nil {
		return MatrixBuffer[T]{}, fmt.Errorf("%w: nil matrix buffer", ErrShape)
	}
	if rows < 0 || columns < 0 {
		return MatrixBuffer[T]{}, fmt.Errorf("%w: negative matrix dimensions %dx%d", ErrShape, rows, columns)
	}
	if layout != RowMajor && layout != ColumnMajor {
		return MatrixBuffer[T]{}, fmt.Errorf("%w: unknown layout %v", ErrShape, layout)
	}
	if err := m.fits(); err != nil {
		return MatrixBuffer[T]{}, err
	}
	return m, nil
}

// MustMatrix is NewMatrix for shapes known to be valid. It panics otherwise.
func MustMatrix[T Scalar](mem Memory, rows, columns int, layout Layout) MatrixBuffer[T] {
	m, err := NewMatrix[T](mem, rows, columns, layout)
	if err != nil {
		panic(err)
	}
	return m
}

// WithStride returns a copy of m with an explicit leading dimension.
func (m MatrixBuffer[T]) WithStride(stride int) (MatrixBuffer[T], error) {
	if stride < max(1, m.minor()) {
		return MatrixBuffer[T]{}, fmt.Errorf("%w: stride %d below minor dimension %d", ErrShape, stride, m.minor())
	}
	m.stride = stride
	if err := m.fits(); err != nil {
		return MatrixBuffer[T]{}, err
	}
	return m, nil
}

// WithOffset returns a copy of m whose first element sits at offset.
func (m MatrixBuffer[T]) WithOffset(offset int) (MatrixBuffer[T], error) {
	if offset < 0 {
		return MatrixBuffer[T]{}, fmt.Errorf("%w: negative offset %d", ErrShape, offset)
	}
	m.offset = offset
	if err := m.fits(); err != nil {
		return MatrixBuffer[T]{}, err
	}
	return m, nil
}

func (m MatrixBuffer[T]) Memory() Memory { return m.mem }
func (m MatrixBuffer[T]) Rows() int      { return m.rows }
func (m MatrixBuffer[T]) Columns() int   { return m.columns }
func (m MatrixBuffer[T]) Layout() Layout { return m.layout }
func (m MatrixBuffer[T]) Stride() int    { return m.stride }
func (m MatrixBuffer[T]) Offset() int    { return m.offset }

func (m MatrixBuffer[T]) major() int {
	if m.layout == ColumnMajor {
		return m.columns
	}
	return m.rows
}

func (m MatrixBuffer[T]) minor() int {
	if m.layout == ColumnMajor {
		return m.rows
	}
	return m.columns
}

// extent is the number of elements the view spans from the buffer start,
// saturating at math.MaxInt.
func (m MatrixBuffer[T]) extent() int {
	if m.rows == 0 || m.columns == 0 {
		return m.offset
	}
	if m.offset > math.MaxInt-m.minor() {
		return math.MaxInt
	}
	base, rest := m.offset+m.minor(), m.major()-1
	if rest > 0 && m.stride > (math.MaxInt-base)/rest {
		return math.MaxInt
	}
	return base + rest*m.stride
}

// within reports whether the view fits in size elements. It never overflows,
// for any non-negative offset and stride.
func (m MatrixBuffer[T]) within(size int) bool {
	if m.rows == 0 || m.columns == 0 {
		return m.offset <= size
	}
	room := size - m.minor()
	if room < 0 || m.offset > room {
		return false
	}
	room -= m.offset
	rest := m.major() - 1
	return rest == 0 || (m.stride > 0 && m.stride <= room/rest)
}

func (m MatrixBuffer[T]) fits() error {
	if n := m.mem.Len(); !m.within(n) {
		return fmt.Errorf("%w: %dx%d matrix with stride %d at offset %d needs %d elements, buffer holds %d",
			ErrShape, m.rows, m.columns, m.stride, m.offset, m.extent(), n)
	}
	return nil
}

func (m MatrixBuffer[T]) matrix() native.Matrix {
	return native.Matrix{Buffer: m.mem, Offset: uint64(m.offset), LD: uint64(m.stride)}
}
