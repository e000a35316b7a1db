package clblast

import "unsafe"

// mem is a stand-in cl_mem for tests that never reach the native layer.
type mem struct {
	n int
}

func (m *mem) Mem() unsafe.Pointer { return unsafe.Pointer(m) }
func (m *mem) Len() int            { return m.n }

func vec[T Element](n int) VectorBuffer[T] {
	return NewVector[T](&mem{n: n})
}

func dense[T Scalar](rows, cols int, layout Layout) MatrixBuffer[T] {
	return MustMatrix[T](&mem{n: rows * cols}, rows, cols, layout)
}
