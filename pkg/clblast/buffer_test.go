package clblast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStride(t *testing.T) {
	assert.Equal(t, 5, DefaultStride(3, 5, RowMajor))
	assert.Equal(t, 3, DefaultStride(3, 5, ColumnMajor))
}

func TestNewMatrix(t *testing.T) {
	t.Run("dense fits exactly", func(t *testing.T) {
		m, err := NewMatrix[float32](&mem{n: 15}, 3, 5, RowMajor)
		require.NoError(t, err)
		assert.Equal(t, 3, m.Rows())
		assert.Equal(t, 5, m.Columns())
		assert.Equal(t, 5, m.Stride())
		assert.Equal(t, 0, m.Offset())
		assert.Equal(t, RowMajor, m.Layout())
	})

	t.Run("buffer too small", func(t *testing.T) {
		_, err := NewMatrix[float64](&mem{n: 14}, 3, 5, ColumnMajor)
		assert.True(t, errors.Is(err, ErrShape))
	})

	t.Run("nil buffer", func(t *testing.T) {
		_, err := NewMatrix[float64](nil, 1, 1, RowMajor)
		assert.True(t, errors.Is(err, ErrShape))
	})

	t.Run("negative dimensions", func(t *testing.T) {
		_, err := NewMatrix[float64](&mem{n: 4}, -1, 2, RowMajor)
		assert.True(t, errors.Is(err, ErrShape))
	})

	t.Run("empty matrix", func(t *testing.T) {
		m, err := NewMatrix[complex64](&mem{n: 0}, 0, 4, RowMajor)
		require.NoError(t, err)
		assert.Equal(t, 4, m.Stride())
	})

	t.Run("must panics on invalid shape", func(t *testing.T) {
		assert.Panics(t, func() { MustMatrix[float32](&mem{n: 1}, 2, 2, RowMajor) })
	})
}

func TestMatrixWithStride(t *testing.T) {
	base := &mem{n: 3*8 - 3}

	t.Run("padded rows", func(t *testing.T) {
		m, err := NewMatrix[float32](base, 3, 2, RowMajor)
		require.NoError(t, err)
		m, err = m.WithStride(8)
		require.NoError(t, err)
		assert.Equal(t, 8, m.Stride())
		assert.Equal(t, 2*8+2, m.extent())
	})

	t.Run("stride below minor dimension", func(t *testing.T) {
		m := MustMatrix[float32](base, 3, 2, RowMajor)
		_, err := m.WithStride(1)
		assert.True(t, errors.Is(err, ErrShape))
	})

	t.Run("stride overruns buffer", func(t *testing.T) {
		m := MustMatrix[float32](base, 3, 2, RowMajor)
		_, err := m.WithStride(20)
		assert.True(t, errors.Is(err, ErrShape))
	})

	t.Run("column major stride counts rows", func(t *testing.T) {
		m := MustMatrix[float32](&mem{n: 12}, 3, 2, ColumnMajor)
		_, err := m.WithStride(2)
		assert.Error(t, err)
		m, err = m.WithStride(6)
		require.NoError(t, err)
		assert.Equal(t, 6+3, m.extent())
	})
}

func TestMatrixWithOffset(t *testing.T) {
	m := MustMatrix[float64](&mem{n: 10}, 2, 2, RowMajor)

	shifted, err := m.WithOffset(6)
	require.NoError(t, err)
	assert.Equal(t, 6, shifted.Offset())
	assert.Equal(t, 0, m.Offset(), "original view is unchanged")

	_, err = m.WithOffset(7)
	assert.True(t, errors.Is(err, ErrShape))
	_, err = m.WithOffset(-1)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestVectorBuffer(t *testing.T) {
	v := vec[float32](4)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 0, v.Offset())

	w := v.WithOffset(3)
	assert.Equal(t, 3, w.Offset())
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 0, VectorBuffer[uint32]{}.Len())
}
