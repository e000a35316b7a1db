package native

import "unsafe"

// Layout selects row-major or column-major matrix storage (CLBlastLayout).
type Layout uint32

const (
	RowMajor Layout = 101
	ColMajor Layout = 102
)

// Transpose selects how a matrix operand is read (CLBlastTranspose).
type Transpose uint32

const (
	NoTrans   Transpose = 111
	Trans     Transpose = 112
	ConjTrans Transpose = 113
)

// Triangle selects which half of a symmetric matrix is referenced (CLBlastTriangle).
type Triangle uint32

const (
	Upper Triangle = 121
	Lower Triangle = 122
)

// Side selects on which side the symmetric operand multiplies (CLBlastSide).
type Side uint32

const (
	Left  Side = 141
	Right Side = 142
)

// Float2 has the memory layout of cl_float2: real part first, then imaginary.
type Float2 struct {
	S [2]float32
}

// Double2 has the memory layout of cl_double2.
type Double2 struct {
	S [2]float64
}

// CommandQueue is an OpenCL command queue owned by the caller.
type CommandQueue interface {
	// CommandQueue returns the cl_command_queue handle.
	CommandQueue() unsafe.Pointer
}

// Memory is an OpenCL memory object owned by the caller.
type Memory interface {
	// Mem returns the cl_mem handle.
	Mem() unsafe.Pointer
	// Len returns the capacity of the buffer in elements of its element type.
	Len() int
}

// Device is an OpenCL device owned by the caller.
type Device interface {
	// DeviceID returns the cl_device_id handle.
	DeviceID() unsafe.Pointer
}

// Call carries the queue and the optional event out-parameter shared by every routine.
// A nil Event means no event is requested.
type Call struct {
	Queue CommandQueue
	Event *unsafe.Pointer
}

// Vector addresses a strided vector inside a buffer. Offset and Inc are in elements.
type Vector struct {
	Buffer Memory
	Offset uint64
	Inc    uint64
}

// Result addresses the single element a reduction writes to.
type Result struct {
	Buffer Memory
	Offset uint64
}

// Matrix addresses a matrix inside a buffer with leading dimension LD.
type Matrix struct {
	Buffer Memory
	Offset uint64
	LD     uint64
}

// ReduceArgs serves sum, asum, nrm2 and the extremum-index routines.
type ReduceArgs struct {
	N   uint64
	Out Result
	X   Vector
}

// DotArgs serves dot, dotu and dotc.
type DotArgs struct {
	N   uint64
	Out Result
	X   Vector
	Y   Vector
}

// PairArgs serves swap and copy.
type PairArgs struct {
	N uint64
	X Vector
	Y Vector
}

// ScalArgs serves xSCAL. W is the wire type of the scalar.
type ScalArgs[W any] struct {
	N     uint64
	Alpha W
	X     Vector
}

// AxpyArgs serves xAXPY.
type AxpyArgs[W any] struct {
	N     uint64
	Alpha W
	X     Vector
	Y     Vector
}

// GemmArgs serves xGEMM: C := alpha*op(A)*op(B) + beta*C with op(A) m×k, op(B) k×n.
type GemmArgs[W any] struct {
	Layout Layout
	TransA Transpose
	TransB Transpose
	M      uint64
	N      uint64
	K      uint64
	Alpha  W
	A      Matrix
	B      Matrix
	Beta   W
	C      Matrix
}

// SymmArgs serves xSYMM. A is m×m for Left and n×n for Right; B and C are m×n.
type SymmArgs[W any] struct {
	Layout   Layout
	Side     Side
	Triangle Triangle
	M        uint64
	N        uint64
	Alpha    W
	A        Matrix
	B        Matrix
	Beta     W
	C        Matrix
}
