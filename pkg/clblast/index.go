package clblast

// The extremum-index routines write a zero-based uint32 index into out. When
// several elements tie, the device may report any of them.

// MaxIndex finds the index of the largest element of x.
type MaxIndex[T Scalar] struct {
	r reduction[T, uint32]
}

func NewMaxIndex[T Scalar](q *Queue, n int, x VectorBuffer[T], out IndexBuffer) *MaxIndex[T] {
	return &MaxIndex[T]{r: newReduction(q, n, x, out)}
}

func (s *MaxIndex[T]) XInc(inc int) *MaxIndex[T]   { s.r.xInc = inc; return s }
func (s *MaxIndex[T]) Event(e *Event) *MaxIndex[T] { s.r.event = e; return s }
func (s *MaxIndex[T]) Run() error                  { return s.r.run(maxFamily) }

// MinIndex finds the index of the smallest element of x.
type MinIndex[T Scalar] struct {
	r reduction[T, uint32]
}

func NewMinIndex[T Scalar](q *Queue, n int, x VectorBuffer[T], out IndexBuffer) *MinIndex[T] {
	return &MinIndex[T]{r: newReduction(q, n, x, out)}
}

func (s *MinIndex[T]) XInc(inc int) *MinIndex[T]   { s.r.xInc = inc; return s }
func (s *MinIndex[T]) Event(e *Event) *MinIndex[T] { s.r.event = e; return s }
func (s *MinIndex[T]) Run() error                  { return s.r.run(minFamily) }

// AbsMaxIndex finds the index of the element of x with the largest magnitude.
type AbsMaxIndex[T Scalar] struct {
	r reduction[T, uint32]
}

func NewAbsMaxIndex[T Scalar](q *Queue, n int, x VectorBuffer[T], out IndexBuffer) *AbsMaxIndex[T] {
	return &AbsMaxIndex[T]{r: newReduction(q, n, x, out)}
}

func (s *AbsMaxIndex[T]) XInc(inc int) *AbsMaxIndex[T]   { s.r.xInc = inc; return s }
func (s *AbsMaxIndex[T]) Event(e *Event) *AbsMaxIndex[T] { s.r.event = e; return s }
func (s *AbsMaxIndex[T]) Run() error                     { return s.r.run(amaxFamily) }

// AbsMinIndex finds the index of the element of x with the smallest magnitude.
type AbsMinIndex[T Scalar] struct {
	r reduction[T, uint32]
}

func NewAbsMinIndex[T Scalar](q *Queue, n int, x VectorBuffer[T], out IndexBuffer) *AbsMinIndex[T] {
	return &AbsMinIndex[T]{r: newReduction(q, n, x, out)}
}

func (s *AbsMinIndex[T]) XInc(inc int) *AbsMinIndex[T]   { s.r.xInc = inc; return s }
func (s *AbsMinIndex[T]) Event(e *Event) *AbsMinIndex[T] { s.r.event = e; return s }
func (s *AbsMinIndex[T]) Run() error                     { return s.r.run(aminFamily) }
