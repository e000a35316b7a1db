package clblast

// Pre-call validation. Every check runs before the native routine is entered,
// so a failure here guarantees the device was never touched.

func checkCount(routine string, n int) error {
	if n < 0 {
		return shapeErrorf(routine, "", "negative element count %d", n)
	}
	return nil
}

func checkVector[T Element](routine, operand string, v VectorBuffer[T], n, inc int) error {
	if v.mem == nil {
		return shapeErrorf(routine, operand, "nil buffer")
	}
	if inc <= 0 {
		return shapeErrorf(routine, operand, "increment %d must be positive", inc)
	}
	if v.offset < 0 {
		return shapeErrorf(routine, operand, "negative offset %d", v.offset)
	}
	// offset + n*inc <= len, arranged so that nothing can overflow.
	if size := v.mem.Len(); v.offset > size || n > (size-v.offset)/inc {
		return shapeErrorf(routine, operand, "offset %d + n %d * inc %d exceeds buffer of %d elements",
			v.offset, n, inc, v.mem.Len())
	}
	return nil
}

func checkResult[T Element](routine, operand string, v VectorBuffer[T]) error {
	if v.mem == nil {
		return shapeErrorf(routine, operand, "nil buffer")
	}
	if v.offset < 0 {
		return shapeErrorf(routine, operand, "negative offset %d", v.offset)
	}
	if v.offset >= v.mem.Len() {
		return shapeErrorf(routine, operand, "result offset %d outside buffer of %d elements", v.offset, v.mem.Len())
	}
	return nil
}

func checkMatrix[T Scalar](routine, operand string, m MatrixBuffer[T]) error {
	if m.mem == nil {
		return shapeErrorf(routine, operand, "nil buffer")
	}
	if m.rows < 0 || m.columns < 0 {
		return shapeErrorf(routine, operand, "negative dimensions %dx%d", m.rows, m.columns)
	}
	if m.offset < 0 {
		return shapeErrorf(routine, operand, "negative offset %d", m.offset)
	}
	if !m.layout.valid() {
		return shapeErrorf(routine, operand, "unknown layout %v", m.layout)
	}
	if m.stride < max(1, m.minor()) {
		return shapeErrorf(routine, operand, "stride %d below minor dimension %d", m.stride, m.minor())
	}
	if !m.within(m.mem.Len()) {
		return shapeErrorf(routine, operand, "view needs %d elements, buffer holds %d", m.extent(), m.mem.Len())
	}
	return nil
}

// transposed returns the logical rows and columns of op(m).
func transposed[T Scalar](m MatrixBuffer[T], t Transpose) (rows, columns int) {
	if t == NoTranspose {
		return m.rows, m.columns
	}
	return m.columns, m.rows
}

// gemmShape validates C := alpha*op(A)*op(B) + beta*C and returns m, n and k.
func gemmShape[T Scalar](routine string, a, b, c MatrixBuffer[T], ta, tb Transpose) (m, n, k int, err error) {
	for _, op := range []struct {
		name string
		m    MatrixBuffer[T]
	}{{"a", a}, {"b", b}, {"c", c}} {
		if err := checkMatrix(routine, op.name, op.m); err != nil {
			return 0, 0, 0, err
		}
	}
	if !ta.valid() {
		return 0, 0, 0, shapeErrorf(routine, "a", "unknown transpose %v", ta)
	}
	if !tb.valid() {
		return 0, 0, 0, shapeErrorf(routine, "b", "unknown transpose %v", tb)
	}
	if a.layout != c.layout || b.layout != c.layout {
		return 0, 0, 0, shapeErrorf(routine, "", "mixed layouts a=%v b=%v c=%v", a.layout, b.layout, c.layout)
	}
	ar, ac := transposed(a, ta)
	br, bc := transposed(b, tb)
	if ac != br {
		return 0, 0, 0, shapeErrorf(routine, "b", "op(a) has %d columns but op(b) has %d rows", ac, br)
	}
	if c.rows != ar {
		return 0, 0, 0, shapeErrorf(routine, "c", "%d rows, op(a) has %d", c.rows, ar)
	}
	if c.columns != bc {
		return 0, 0, 0, shapeErrorf(routine, "c", "%d columns, op(b) has %d", c.columns, bc)
	}
	return c.rows, c.columns, ac, nil
}

// symmShape validates C := alpha*A*B + beta*C (Left) or alpha*B*A + beta*C
// (Right) with A symmetric, and returns m and n.
func symmShape[T Scalar](routine string, side Side, triangle Triangle, a, b, c MatrixBuffer[T]) (m, n int, err error) {
	if !side.valid() {
		return 0, 0, shapeErrorf(routine, "a", "unknown side %v", side)
	}
	if !triangle.valid() {
		return 0, 0, shapeErrorf(routine, "a", "unknown triangle %v", triangle)
	}
	for _, op := range []struct {
		name string
		m    MatrixBuffer[T]
	}{{"a", a}, {"b", b}, {"c", c}} {
		if err := checkMatrix(routine, op.name, op.m); err != nil {
			return 0, 0, err
		}
	}
	if a.layout != c.layout || b.layout != c.layout {
		return 0, 0, shapeErrorf(routine, "", "mixed layouts a=%v b=%v c=%v", a.layout, b.layout, c.layout)
	}
	if a.rows != a.columns {
		return 0, 0, shapeErrorf(routine, "a", "symmetric operand is %dx%d", a.rows, a.columns)
	}
	if b.rows != c.rows || b.columns != c.columns {
		return 0, 0, shapeErrorf(routine, "b", "%dx%d does not match c %dx%d", b.rows, b.columns, c.rows, c.columns)
	}
	order := c.rows
	if side == Right {
		order = c.columns
	}
	if a.rows != order {
		return 0, 0, shapeErrorf(routine, "a", "order %d, %v side needs %d", a.rows, side, order)
	}
	return c.rows, c.columns, nil
}
