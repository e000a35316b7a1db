package native

// Status is the raw CLBlastStatusCode returned by every CLBlast entry point.
type Status int32

// Status codes shared with the OpenCL standard.
const (
	Success                    Status = 0
	OpenCLCompilerNotAvailable Status = -3
	TempBufferAllocFailure     Status = -4
	OpenCLOutOfResources       Status = -5
	OpenCLOutOfHostMemory      Status = -6
	OpenCLBuildProgramFailure  Status = -11
	InvalidValue               Status = -30
	InvalidCommandQueue        Status = -36
	InvalidMemObject           Status = -38
	InvalidBinary              Status = -42
	InvalidBuildOptions        Status = -43
	InvalidProgram             Status = -44
	InvalidProgramExecutable   Status = -45
	InvalidKernelName          Status = -46
	InvalidKernelDefinition    Status = -47
	InvalidKernel              Status = -48
	InvalidArgIndex            Status = -49
	InvalidArgValue            Status = -50
	InvalidArgSize             Status = -51
	InvalidKernelArgs          Status = -52
	InvalidLocalNumDimensions  Status = -53
	InvalidLocalThreadsTotal   Status = -54
	InvalidLocalThreadsDim     Status = -55
	InvalidGlobalOffset        Status = -56
	InvalidEventWaitList       Status = -57
	InvalidEvent               Status = -58
	InvalidOperation           Status = -59
	InvalidBufferSize          Status = -61
	InvalidGlobalWorkSize      Status = -63
)

// Status codes shared with clBLAS.
const (
	NotImplemented      Status = -1024
	InvalidMatrixA      Status = -1022
	InvalidMatrixB      Status = -1021
	InvalidMatrixC      Status = -1020
	InvalidVectorX      Status = -1019
	InvalidVectorY      Status = -1018
	InvalidDimension    Status = -1017
	InvalidLeadDimA     Status = -1016
	InvalidLeadDimB     Status = -1015
	InvalidLeadDimC     Status = -1014
	InvalidIncrementX   Status = -1013
	InvalidIncrementY   Status = -1012
	InsufficientMemoryA Status = -1011
	InsufficientMemoryB Status = -1010
	InsufficientMemoryC Status = -1009
	InsufficientMemoryX Status = -1008
	InsufficientMemoryY Status = -1007
)

// Status codes specific to CLBlast.
const (
	InsufficientMemoryTemp   Status = -2050
	InvalidBatchCount        Status = -2049
	InvalidOverrideKernel    Status = -2048
	MissingOverrideParameter Status = -2047
	InvalidLocalMemUsage     Status = -2046
	NoHalfPrecision          Status = -2045
	NoDoublePrecision        Status = -2044
	InvalidVectorScalar      Status = -2043
	InsufficientMemoryScalar Status = -2042
	DatabaseError            Status = -2041
	UnknownError             Status = -2040
	UnexpectedError          Status = -2039
)
