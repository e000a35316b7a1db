package clblast

import (
	"fmt"

	"github.com/fxnlabs/clblast/pkg/clblast/native"
)

// Layout is the storage order of a matrix.
type Layout int

const (
	RowMajor Layout = iota
	ColumnMajor
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

func (l Layout) valid() bool { return l == RowMajor || l == ColumnMajor }

func (l Layout) wire() native.Layout {
	if l == ColumnMajor {
		return native.ColMajor
	}
	return native.RowMajor
}

// Transpose selects how a matrix operand is read. ConjugateTransposed behaves
// as Transposed for real element types.
type Transpose int

const (
	NoTranspose Transpose = iota
	Transposed
	ConjugateTransposed
)

func (t Transpose) String() string {
	switch t {
	case NoTranspose:
		return "no-transpose"
	case Transposed:
		return "transpose"
	case ConjugateTransposed:
		return "conjugate-transpose"
	default:
		return fmt.Sprintf("Transpose(%d)", int(t))
	}
}

func (t Transpose) valid() bool { return t >= NoTranspose && t <= ConjugateTransposed }

func (t Transpose) wire() native.Transpose {
	switch t {
	case Transposed:
		return native.Trans
	case ConjugateTransposed:
		return native.ConjTrans
	default:
		return native.NoTrans
	}
}

// Triangle selects which half of a symmetric matrix is referenced.
type Triangle int

const (
	Upper Triangle = iota
	Lower
)

func (t Triangle) String() string {
	switch t {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Triangle(%d)", int(t))
	}
}

func (t Triangle) valid() bool { return t == Upper || t == Lower }

func (t Triangle) wire() native.Triangle {
	if t == Lower {
		return native.Lower
	}
	return native.Upper
}

// Side selects whether the symmetric operand multiplies from the left or the right.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) valid() bool { return s == Left || s == Right }

func (s Side) wire() native.Side {
	if s == Right {
		return native.Right
	}
	return native.Left
}
