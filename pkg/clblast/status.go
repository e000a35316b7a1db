package clblast

import (
	"fmt"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

type statusInfo struct {
	name string
	text string
}

// RuntimeError is a status code CLBlast shares with the OpenCL runtime.
type RuntimeError native.Status

const (
	OpenCLCompilerNotAvailable = RuntimeError(native.OpenCLCompilerNotAvailable)
	TempBufferAllocFailure     = RuntimeError(native.TempBufferAllocFailure)
	OpenCLOutOfResources       = RuntimeError(native.OpenCLOutOfResources)
	OpenCLOutOfHostMemory      = RuntimeError(native.OpenCLOutOfHostMemory)
	OpenCLBuildProgramFailure  = RuntimeError(native.OpenCLBuildProgramFailure)
	InvalidValue               = RuntimeError(native.InvalidValue)
	InvalidCommandQueue        = RuntimeError(native.InvalidCommandQueue)
	InvalidMemObject           = RuntimeError(native.InvalidMemObject)
	InvalidBinary              = RuntimeError(native.InvalidBinary)
	InvalidBuildOptions        = RuntimeError(native.InvalidBuildOptions)
	InvalidProgram             = RuntimeError(native.InvalidProgram)
	InvalidProgramExecutable   = RuntimeError(native.InvalidProgramExecutable)
	InvalidKernelName          = RuntimeError(native.InvalidKernelName)
	InvalidKernelDefinition    = RuntimeError(native.InvalidKernelDefinition)
	InvalidKernel              = RuntimeError(native.InvalidKernel)
	InvalidArgIndex            = RuntimeError(native.InvalidArgIndex)
	InvalidArgValue            = RuntimeError(native.InvalidArgValue)
	InvalidArgSize             = RuntimeError(native.InvalidArgSize)
	InvalidKernelArgs          = RuntimeError(native.InvalidKernelArgs)
	InvalidLocalNumDimensions  = RuntimeError(native.InvalidLocalNumDimensions)
	InvalidLocalThreadsTotal   = RuntimeError(native.InvalidLocalThreadsTotal)
	InvalidLocalThreadsDim     = RuntimeError(native.InvalidLocalThreadsDim)
	InvalidGlobalOffset        = RuntimeError(native.InvalidGlobalOffset)
	InvalidEventWaitList       = RuntimeError(native.InvalidEventWaitList)
	InvalidEvent               = RuntimeError(native.InvalidEvent)
	InvalidOperation           = RuntimeError(native.InvalidOperation)
	InvalidBufferSize          = RuntimeError(native.InvalidBufferSize)
	InvalidGlobalWorkSize      = RuntimeError(native.InvalidGlobalWorkSize)
)

var runtimeErrors = map[RuntimeError]statusInfo{
	OpenCLCompilerNotAvailable: {"OpenCLCompilerNotAvailable", "OpenCL compiler not available"},
	TempBufferAllocFailure:     {"TempBufferAllocFailure", "failed to allocate temporary buffer"},
	OpenCLOutOfResources:       {"OpenCLOutOfResources", "OpenCL device out of resources"},
	OpenCLOutOfHostMemory:      {"OpenCLOutOfHostMemory", "OpenCL host out of memory"},
	OpenCLBuildProgramFailure:  {"OpenCLBuildProgramFailure", "OpenCL kernel compilation failed"},
	InvalidValue:               {"InvalidValue", "invalid value"},
	InvalidCommandQueue:        {"InvalidCommandQueue", "invalid command queue"},
	InvalidMemObject:           {"InvalidMemObject", "invalid memory object"},
	InvalidBinary:              {"InvalidBinary", "invalid program binary"},
	InvalidBuildOptions:        {"InvalidBuildOptions", "invalid build options"},
	InvalidProgram:             {"InvalidProgram", "invalid program"},
	InvalidProgramExecutable:   {"InvalidProgramExecutable", "invalid program executable"},
	InvalidKernelName:          {"InvalidKernelName", "invalid kernel name"},
	InvalidKernelDefinition:    {"InvalidKernelDefinition", "invalid kernel definition"},
	InvalidKernel:              {"InvalidKernel", "invalid kernel"},
	InvalidArgIndex:            {"InvalidArgIndex", "invalid kernel argument index"},
	InvalidArgValue:            {"InvalidArgValue", "invalid kernel argument value"},
	InvalidArgSize:             {"InvalidArgSize", "invalid kernel argument size"},
	InvalidKernelArgs:          {"InvalidKernelArgs", "invalid kernel arguments"},
	InvalidLocalNumDimensions:  {"InvalidLocalNumDimensions", "invalid number of work dimensions"},
	InvalidLocalThreadsTotal:   {"InvalidLocalThreadsTotal", "invalid work-group size"},
	InvalidLocalThreadsDim:     {"InvalidLocalThreadsDim", "invalid work-item size"},
	InvalidGlobalOffset:        {"InvalidGlobalOffset", "invalid global offset"},
	InvalidEventWaitList:       {"InvalidEventWaitList", "invalid event wait list"},
	InvalidEvent:               {"InvalidEvent", "invalid event"},
	InvalidOperation:           {"InvalidOperation", "invalid operation"},
	InvalidBufferSize:          {"InvalidBufferSize", "invalid buffer size"},
	InvalidGlobalWorkSize:      {"InvalidGlobalWorkSize", "invalid global work size"},
}

func (e RuntimeError) Code() native.Status { return native.Status(e) }

func (e RuntimeError) String() string { return lookupName(runtimeErrors[e], native.Status(e)) }

func (e RuntimeError) Error() string {
	return statusText("opencl", runtimeErrors[e], native.Status(e))
}

// ArgumentError is a BLAS argument status code shared with clBLAS.
type ArgumentError native.Status

const (
	NotImplemented      = ArgumentError(native.NotImplemented)
	InvalidMatrixA      = ArgumentError(native.InvalidMatrixA)
	InvalidMatrixB      = ArgumentError(native.InvalidMatrixB)
	InvalidMatrixC      = ArgumentError(native.InvalidMatrixC)
	InvalidVectorX      = ArgumentError(native.InvalidVectorX)
	InvalidVectorY      = ArgumentError(native.InvalidVectorY)
	InvalidDimension    = ArgumentError(native.InvalidDimension)
	InvalidLeadDimA     = ArgumentError(native.InvalidLeadDimA)
	InvalidLeadDimB     = ArgumentError(native.InvalidLeadDimB)
	InvalidLeadDimC     = ArgumentError(native.InvalidLeadDimC)
	InvalidIncrementX   = ArgumentError(native.InvalidIncrementX)
	InvalidIncrementY   = ArgumentError(native.InvalidIncrementY)
	InsufficientMemoryA = ArgumentError(native.InsufficientMemoryA)
	InsufficientMemoryB = ArgumentError(native.InsufficientMemoryB)
	InsufficientMemoryC = ArgumentError(native.InsufficientMemoryC)
	InsufficientMemoryX = ArgumentError(native.InsufficientMemoryX)
	InsufficientMemoryY = ArgumentError(native.InsufficientMemoryY)
)

var argumentErrors = map[ArgumentError]statusInfo{
	NotImplemented:      {"NotImplemented", "routine or option not implemented"},
	InvalidMatrixA:      {"InvalidMatrixA", "invalid matrix A"},
	InvalidMatrixB:      {"InvalidMatrixB", "invalid matrix B"},
	InvalidMatrixC:      {"InvalidMatrixC", "invalid matrix C"},
	InvalidVectorX:      {"InvalidVectorX", "invalid vector x"},
	InvalidVectorY:      {"InvalidVectorY", "invalid vector y"},
	InvalidDimension:    {"InvalidDimension", "invalid dimension"},
	InvalidLeadDimA:     {"InvalidLeadDimA", "leading dimension of A is smaller than its minor dimension"},
	InvalidLeadDimB:     {"InvalidLeadDimB", "leading dimension of B is smaller than its minor dimension"},
	InvalidLeadDimC:     {"InvalidLeadDimC", "leading dimension of C is smaller than its minor dimension"},
	InvalidIncrementX:   {"InvalidIncrementX", "increment of x is zero"},
	InvalidIncrementY:   {"InvalidIncrementY", "increment of y is zero"},
	InsufficientMemoryA: {"InsufficientMemoryA", "buffer for matrix A is too small"},
	InsufficientMemoryB: {"InsufficientMemoryB", "buffer for matrix B is too small"},
	InsufficientMemoryC: {"InsufficientMemoryC", "buffer for matrix C is too small"},
	InsufficientMemoryX: {"InsufficientMemoryX", "buffer for vector x is too small"},
	InsufficientMemoryY: {"InsufficientMemoryY", "buffer for vector y is too small"},
}

func (e ArgumentError) Code() native.Status { return native.Status(e) }

func (e ArgumentError) String() string { return lookupName(argumentErrors[e], native.Status(e)) }

func (e ArgumentError) Error() string {
	return statusText("blas", argumentErrors[e], native.Status(e))
}

// InternalError is a status code specific to CLBlast itself.
type InternalError native.Status

const (
	InsufficientMemoryTemp   = InternalError(native.InsufficientMemoryTemp)
	InvalidBatchCount        = InternalError(native.InvalidBatchCount)
	InvalidOverrideKernel    = InternalError(native.InvalidOverrideKernel)
	MissingOverrideParameter = InternalError(native.MissingOverrideParameter)
	InvalidLocalMemUsage     = InternalError(native.InvalidLocalMemUsage)
	NoHalfPrecision          = InternalError(native.NoHalfPrecision)
	NoDoublePrecision        = InternalError(native.NoDoublePrecision)
	InvalidVectorScalar      = InternalError(native.InvalidVectorScalar)
	InsufficientMemoryScalar = InternalError(native.InsufficientMemoryScalar)
	DatabaseError            = InternalError(native.DatabaseError)
	UnknownError             = InternalError(native.UnknownError)
	UnexpectedError          = InternalError(native.UnexpectedError)
)

var internalErrors = map[InternalError]statusInfo{
	InsufficientMemoryTemp:   {"InsufficientMemoryTemp", "temporary buffer provided to GEMM routine is too small"},
	InvalidBatchCount:        {"InvalidBatchCount", "batch count must be positive"},
	InvalidOverrideKernel:    {"InvalidOverrideKernel", "trying to override parameters for an invalid kernel"},
	MissingOverrideParameter: {"MissingOverrideParameter", "missing override parameter for the target kernel"},
	InvalidLocalMemUsage:     {"InvalidLocalMemUsage", "not enough local memory available on this device"},
	NoHalfPrecision:          {"NoHalfPrecision", "half precision is not supported by this device"},
	NoDoublePrecision:        {"NoDoublePrecision", "double precision is not supported by this device"},
	InvalidVectorScalar:      {"InvalidVectorScalar", "unit-sized vector is not a valid memory object"},
	InsufficientMemoryScalar: {"InsufficientMemoryScalar", "unit-sized vector buffer is too small"},
	DatabaseError:            {"DatabaseError", "device entry not in tuning database"},
	UnknownError:             {"UnknownError", "unspecified error"},
	UnexpectedError:          {"UnexpectedError", "unexpected exception"},
}

func (e InternalError) Code() native.Status { return native.Status(e) }

func (e InternalError) String() string { return lookupName(internalErrors[e], native.Status(e)) }

func (e InternalError) Error() string {
	return statusText("internal", internalErrors[e], native.Status(e))
}

func lookupName(info statusInfo, code native.Status) string {
	if info.name == "" {
		return fmt.Sprintf("Status(%d)", int32(code))
	}
	return info.name
}

func statusText(tier string, info statusInfo, code native.Status) string {
	if info.text == "" {
		return fmt.Sprintf("clblast: %s error %d", tier, int32(code))
	}
	return fmt.Sprintf("clblast: %s (%s, %d)", info.text, info.name, int32(code))
}
