// Package clblast is a shape-checked binding to the CLBlast OpenCL BLAS library.
//
// Each routine is a single-use descriptor: a constructor takes the required
// operands, chained setters override the optional ones, and Run validates the
// operand shapes, converts scalars to their OpenCL form and enqueues the
// native routine on the queue. Run never waits for the device; pass an Event
// to learn when the work completes.
//
//	lib, err := clblast.New(clblast.WithLogger(log))
//	q := lib.Queue(rt)
//	err = clblast.NewGemm(q, a, b, c).Alpha(2).Run()
//
// Failures come from two disjoint channels. A *ShapeError (matching ErrShape)
// means the operands were rejected and nothing reached the device. A
// *CallError wraps the translated native status, one of RuntimeError,
// ArgumentError, InternalError or *UnrecognizedStatusError.
//
// Buffers, queues and devices are owned by the caller; this package never
// allocates or releases OpenCL objects.
package clblast
