package clblast_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/clblasttest"
	"github.com/fxnlabs/clblast/pkg/clblast/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T, opts ...clblast.Option) (*clblast.Queue, *clblasttest.API) {
	t.Helper()
	api := clblasttest.New()
	lib, err := clblast.New(append([]clblast.Option{clblast.WithNative(api)}, opts...)...)
	require.NoError(t, err)
	return lib.Queue(&clblasttest.Queue{Name: t.Name()}), api
}

func scalars[T clblast.Scalar](vals ...float64) []T {
	out := make([]T, len(vals))
	for i, v := range vals {
		switch p := any(&out[i]).(type) {
		case *float32:
			*p = float32(v)
		case *float64:
			*p = v
		case *complex64:
			*p = complex(float32(v), 0)
		case *complex128:
			*p = complex(v, 0)
		}
	}
	return out
}

func matrixOf[T clblast.Scalar](t *testing.T, buf *clblasttest.Buffer[T], rows, cols int, layout clblast.Layout) clblast.MatrixBuffer[T] {
	t.Helper()
	m, err := clblast.NewMatrix[T](buf, rows, cols, layout)
	require.NoError(t, err)
	return m
}

// colMajor converts row-major data of a rows×cols matrix into column-major order.
func colMajor[T any](data []T, rows, cols int) []T {
	out := make([]T, len(data))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = data[i*cols+j]
		}
	}
	return out
}

var (
	fixtureA = []float64{
		0, 2, 1, 0, 2,
		0, 1, 1, 2, 3,
		1, 2, 3, 4, 5,
		0, 0, 0, 0, 0,
		0, 1, 3, 9, 2,
	}
	fixtureB = []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		7, 8, 9,
		7, 8, 9,
	}
	fixtureC = []float64{29, 34, 39, 46, 53, 60, 93, 108, 123, 0, 0, 0, 102, 117, 132}
)

func gemmFixture[T clblast.Scalar](t *testing.T) {
	q, api := newQueue(t)
	a := clblasttest.BufferOf(scalars[T](fixtureA...)...)
	b := clblasttest.BufferOf(scalars[T](fixtureB...)...)
	c := clblasttest.NewBuffer[T](15)

	err := clblast.NewGemm(q,
		matrixOf(t, a, 5, 5, clblast.RowMajor),
		matrixOf(t, b, 5, 3, clblast.RowMajor),
		matrixOf(t, c, 5, 3, clblast.RowMajor),
	).Run()
	require.NoError(t, err)
	assert.Equal(t, scalars[T](fixtureC...), c.Data)
	assert.Equal(t, 1, api.Total())
}

func TestGemm(t *testing.T) {
	t.Run("fixture float32", gemmFixture[float32])
	t.Run("fixture float64", gemmFixture[float64])
	t.Run("fixture complex64", gemmFixture[complex64])
	t.Run("fixture complex128", gemmFixture[complex128])

	t.Run("column major matches row major", func(t *testing.T) {
		q, _ := newQueue(t)
		a := clblasttest.BufferOf(colMajor(scalars[float64](fixtureA...), 5, 5)...)
		b := clblasttest.BufferOf(colMajor(scalars[float64](fixtureB...), 5, 3)...)
		c := clblasttest.NewBuffer[float64](15)

		err := clblast.NewGemm(q,
			matrixOf(t, a, 5, 5, clblast.ColumnMajor),
			matrixOf(t, b, 5, 3, clblast.ColumnMajor),
			matrixOf(t, c, 5, 3, clblast.ColumnMajor),
		).Run()
		require.NoError(t, err)
		assert.Equal(t, colMajor(fixtureC, 5, 3), c.Data)
	})

	t.Run("transposed a", func(t *testing.T) {
		q, api := newQueue(t)
		// A^T stored row-major, so op(A) = A.
		a := clblasttest.BufferOf(colMajor(scalars[float32](fixtureA...), 5, 5)...)
		b := clblasttest.BufferOf(scalars[float32](fixtureB...)...)
		c := clblasttest.NewBuffer[float32](15)

		err := clblast.NewGemm(q,
			matrixOf(t, a, 5, 5, clblast.RowMajor),
			matrixOf(t, b, 5, 3, clblast.RowMajor),
			matrixOf(t, c, 5, 3, clblast.RowMajor),
		).TransposeA(clblast.Transposed).Run()
		require.NoError(t, err)
		assert.Equal(t, scalars[float32](fixtureC...), c.Data)
		assert.Equal(t, 1, api.Calls("Sgemm"))
	})

	t.Run("alpha and beta", func(t *testing.T) {
		q, _ := newQueue(t)
		a := clblasttest.BufferOf[float64](1, 2, 3)
		b := clblasttest.BufferOf[float64](1, 1, 1)
		c := clblasttest.BufferOf[float64](10)

		err := clblast.NewGemm(q,
			matrixOf(t, a, 1, 3, clblast.RowMajor),
			matrixOf(t, b, 3, 1, clblast.RowMajor),
			matrixOf(t, c, 1, 1, clblast.RowMajor),
		).Alpha(2).Beta(0.5).Run()
		require.NoError(t, err)
		assert.Equal(t, []float64{2*6 + 5}, c.Data)
	})

	t.Run("zero a yields zero c", func(t *testing.T) {
		q, _ := newQueue(t)
		a := clblasttest.NewBuffer[float32](3 * 4)
		b := clblasttest.BufferOf(scalars[float32](1, 1, 1, 1, 1, 1, 1, 1)...)
		c := clblasttest.BufferOf(scalars[float32](7, 7, 7, 7, 7, 7)...)

		err := clblast.NewGemm(q,
			matrixOf(t, a, 3, 4, clblast.RowMajor),
			matrixOf(t, b, 4, 2, clblast.RowMajor),
			matrixOf(t, c, 3, 2, clblast.RowMajor),
		).Run()
		require.NoError(t, err)
		assert.Equal(t, make([]float32, 6), c.Data)
	})

	t.Run("complex product", func(t *testing.T) {
		q, api := newQueue(t)
		a := clblasttest.BufferOf[complex64](1i, 2)
		b := clblasttest.BufferOf[complex64](1i, 1+1i)
		c := clblasttest.NewBuffer[complex64](1)

		err := clblast.NewGemm(q,
			matrixOf(t, a, 1, 2, clblast.RowMajor),
			matrixOf(t, b, 2, 1, clblast.RowMajor),
			matrixOf(t, c, 1, 1, clblast.RowMajor),
		).Run()
		require.NoError(t, err)
		assert.Equal(t, []complex64{-1 + 2 + 2i}, c.Data)
		assert.Equal(t, 1, api.Calls("Cgemm"))
	})

	t.Run("padded leading dimension", func(t *testing.T) {
		q, _ := newQueue(t)
		a := clblasttest.BufferOf[float64](1, 2, -1, 3, 4, -1)
		b := clblasttest.BufferOf[float64](1, 0, 0, 1)
		c := clblasttest.NewBuffer[float64](4)

		av, err := matrixOf(t, a, 2, 2, clblast.RowMajor).WithStride(3)
		require.NoError(t, err)
		err = clblast.NewGemm(q, av, matrixOf(t, b, 2, 2, clblast.RowMajor), matrixOf(t, c, 2, 2, clblast.RowMajor)).Run()
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, c.Data)
	})
}

func TestSymm(t *testing.T) {
	// Only the upper triangle of A is meaningful; the lower holds junk.
	a := []float64{
		1, 2,
		-99, 3,
	}
	b := []float64{
		1, 0, 2,
		0, 1, 1,
	}
	// [[1,2],[2,3]] * b
	left := []float64{1, 2, 4, 2, 3, 7}

	t.Run("left upper row major", func(t *testing.T) {
		q, api := newQueue(t)
		c := clblasttest.NewBuffer[float64](6)
		err := clblast.NewSymm(q, clblast.Left, clblast.Upper,
			matrixOf(t, clblasttest.BufferOf(a...), 2, 2, clblast.RowMajor),
			matrixOf(t, clblasttest.BufferOf(b...), 2, 3, clblast.RowMajor),
			matrixOf(t, c, 2, 3, clblast.RowMajor),
		).Run()
		require.NoError(t, err)
		assert.Equal(t, left, c.Data)
		assert.Equal(t, 1, api.Calls("Dsymm"))
	})

	t.Run("left lower column major", func(t *testing.T) {
		q, _ := newQueue(t)
		// Column-major storage of [[1,2],[2,3]] with junk above the diagonal.
		ac := []float32{1, 2, -99, 3}
		c := clblasttest.NewBuffer[float32](6)
		err := clblast.NewSymm(q, clblast.Left, clblast.Lower,
			matrixOf(t, clblasttest.BufferOf(ac...), 2, 2, clblast.ColumnMajor),
			matrixOf(t, clblasttest.BufferOf(colMajor(scalars[float32](b...), 2, 3)...), 2, 3, clblast.ColumnMajor),
			matrixOf(t, c, 2, 3, clblast.ColumnMajor),
		).Run()
		require.NoError(t, err)
		assert.Equal(t, colMajor(scalars[float32](left...), 2, 3), c.Data)
	})

	t.Run("right side", func(t *testing.T) {
		q, _ := newQueue(t)
		bt := []float64{1, 0, 0, 1, 2, 1} // 3x2, b transposed
		c := clblasttest.NewBuffer[float64](6)
		err := clblast.NewSymm(q, clblast.Right, clblast.Upper,
			matrixOf(t, clblasttest.BufferOf(a...), 2, 2, clblast.RowMajor),
			matrixOf(t, clblasttest.BufferOf(bt...), 3, 2, clblast.RowMajor),
			matrixOf(t, c, 3, 2, clblast.RowMajor),
		).Alpha(2).Run()
		require.NoError(t, err)
		// 2 * b^T * A is the transpose of 2 * left.
		assert.Equal(t, []float64{2, 4, 4, 6, 8, 14}, c.Data)
	})

	t.Run("complex beta keeps c", func(t *testing.T) {
		q, _ := newQueue(t)
		c := clblasttest.BufferOf[complex128](1i)
		err := clblast.NewSymm(q, clblast.Left, clblast.Upper,
			matrixOf(t, clblasttest.BufferOf[complex128](0), 1, 1, clblast.RowMajor),
			matrixOf(t, clblasttest.BufferOf[complex128](5), 1, 1, clblast.RowMajor),
			matrixOf(t, c, 1, 1, clblast.RowMajor),
		).Beta(1).Run()
		require.NoError(t, err)
		assert.Equal(t, []complex128{1i}, c.Data)
	})
}

func TestAxpy(t *testing.T) {
	t.Run("zero alpha leaves y unchanged", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float32](1, 2, 3)
		y := clblasttest.BufferOf[float32](4, 5, 6)
		require.NoError(t, clblast.NewAxpy(q, 3, x.Vector(), y.Vector()).Alpha(0).Run())
		assert.Equal(t, []float32{4, 5, 6}, y.Data)
	})

	t.Run("default alpha is one", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float64](1, 2, 3)
		y := clblasttest.BufferOf[float64](4, 5, 6)
		require.NoError(t, clblast.NewAxpy(q, 3, x.Vector(), y.Vector()).Run())
		assert.Equal(t, []float64{5, 7, 9}, y.Data)
	})

	t.Run("strided with offset", func(t *testing.T) {
		q, api := newQueue(t)
		x := clblasttest.BufferOf[float64](1, -1, 2, -1)
		y := clblasttest.BufferOf[float64](0, 10, 20)
		err := clblast.NewAxpy(q, 2, x.Vector(), y.Vector().WithOffset(1)).XInc(2).Alpha(3).Run()
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 13, 26}, y.Data)
		assert.Equal(t, 1, api.Calls("Daxpy"))
	})

	t.Run("complex alpha", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[complex64](1, 1i)
		y := clblasttest.NewBuffer[complex64](2)
		require.NoError(t, clblast.NewAxpy(q, 2, x.Vector(), y.Vector()).Alpha(1i).Run())
		assert.Equal(t, []complex64{1i, -1}, y.Data)
	})
}

func TestCopySwapScale(t *testing.T) {
	t.Run("copy is idempotent", func(t *testing.T) {
		q, api := newQueue(t)
		x := clblasttest.BufferOf[complex128](1+2i, 3, -4i)
		y := clblasttest.NewBuffer[complex128](3)
		require.NoError(t, clblast.NewCopy(q, 3, x.Vector(), y.Vector()).Run())
		first := append([]complex128(nil), y.Data...)
		require.NoError(t, clblast.NewCopy(q, 3, x.Vector(), y.Vector()).Run())
		assert.Equal(t, first, y.Data)
		assert.Equal(t, x.Data, y.Data)
		assert.Equal(t, 2, api.Calls("Zcopy"))
	})

	t.Run("swap", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float32](1, 2)
		y := clblasttest.BufferOf[float32](3, 4, 5, 6)
		require.NoError(t, clblast.NewSwap(q, 2, x.Vector(), y.Vector()).YInc(2).Run())
		assert.Equal(t, []float32{3, 5}, x.Data)
		assert.Equal(t, []float32{1, 4, 2, 6}, y.Data)
	})

	t.Run("scale default alpha is identity", func(t *testing.T) {
		q, api := newQueue(t)
		x := clblasttest.BufferOf[float64](1, 2, 3)
		require.NoError(t, clblast.NewScale(q, 3, x.Vector()).Run())
		assert.Equal(t, []float64{1, 2, 3}, x.Data)
		assert.Equal(t, 1, api.Calls("Dscal"))
	})

	t.Run("complex scale", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[complex64](1, 1i, 2, 3)
		require.NoError(t, clblast.NewScale(q, 2, x.Vector()).Alpha(1i).XInc(2).Run())
		assert.Equal(t, []complex64{1i, 1i, 2i, 3}, x.Data)
	})
}

func TestReductions(t *testing.T) {
	t.Run("real", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float32](3, -4, 12)
		out := clblasttest.NewBuffer[float32](3)

		require.NoError(t, clblast.NewSum(q, 3, x.Vector(), out.Vector()).Run())
		require.NoError(t, clblast.NewAbsoluteSum(q, 3, x.Vector(), out.Vector().WithOffset(1)).Run())
		require.NoError(t, clblast.NewNorm2(q, 3, x.Vector(), out.Vector().WithOffset(2)).Run())
		assert.Equal(t, float32(11), out.Data[0])
		assert.Equal(t, float32(19), out.Data[1])
		assert.InDelta(t, 13, out.Data[2], 1e-5)
	})

	t.Run("strided", func(t *testing.T) {
		// The last stride must fit in the buffer even though it is never read.
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float64](1, 100, 2, 100, 3, 100)
		out := clblasttest.NewBuffer[float64](1)
		require.NoError(t, clblast.NewSum(q, 3, x.Vector(), out.Vector()).XInc(2).Run())
		assert.Equal(t, []float64{6}, out.Data)
	})

	t.Run("complex results land in the real part", func(t *testing.T) {
		q, api := newQueue(t)
		x := clblasttest.BufferOf[complex128](3+4i, -1-1i)
		out := clblasttest.NewBuffer[complex128](3)

		require.NoError(t, clblast.NewSum(q, 2, x.Vector(), out.Vector()).Run())
		require.NoError(t, clblast.NewAbsoluteSum(q, 2, x.Vector(), out.Vector().WithOffset(1)).Run())
		require.NoError(t, clblast.NewNorm2(q, 2, x.Vector(), out.Vector().WithOffset(2)).Run())
		assert.Equal(t, 2+3i, out.Data[0])
		assert.Equal(t, complex(9, 0), out.Data[1])
		assert.InDelta(t, math.Sqrt(27), real(out.Data[2]), 1e-12)
		assert.Zero(t, imag(out.Data[2]))
		assert.Equal(t, 1, api.Calls("Dzsum"))
		assert.Equal(t, 1, api.Calls("Dzasum"))
		assert.Equal(t, 1, api.Calls("Dznrm2"))
	})
}

func TestIndexRoutines(t *testing.T) {
	q, api := newQueue(t)
	x := clblasttest.BufferOf[float64](3, -7, 5, 1).Vector()
	out := clblasttest.NewBuffer[uint32](4)

	require.NoError(t, clblast.NewMaxIndex(q, 4, x, out.Vector()).Run())
	require.NoError(t, clblast.NewMinIndex(q, 4, x, out.Vector().WithOffset(1)).Run())
	require.NoError(t, clblast.NewAbsMaxIndex(q, 4, x, out.Vector().WithOffset(2)).Run())
	require.NoError(t, clblast.NewAbsMinIndex(q, 4, x, out.Vector().WithOffset(3)).Run())
	assert.Equal(t, []uint32{2, 1, 1, 3}, out.Data)
	for _, routine := range []string{"iDmax", "iDmin", "iDamax", "iDamin"} {
		assert.Equal(t, 1, api.Calls(routine), routine)
	}

	t.Run("complex", func(t *testing.T) {
		q, _ := newQueue(t)
		z := clblasttest.BufferOf[complex64](1, -3i, 2+2i).Vector()
		idx := clblasttest.NewBuffer[uint32](2)
		require.NoError(t, clblast.NewAbsMaxIndex(q, 3, z, idx.Vector()).Run())
		require.NoError(t, clblast.NewAbsMinIndex(q, 3, z, idx.Vector().WithOffset(1)).Run())
		assert.Equal(t, []uint32{2, 0}, idx.Data)
	})
}

func TestDot(t *testing.T) {
	t.Run("real", func(t *testing.T) {
		q, _ := newQueue(t)
		x := clblasttest.BufferOf[float32](1, 2, 3)
		y := clblasttest.BufferOf[float32](4, 5, 6)
		out := clblasttest.NewBuffer[float32](1)
		require.NoError(t, clblast.NewDot(q, 3, x.Vector(), y.Vector(), out.Vector()).Run())
		assert.Equal(t, []float32{32}, out.Data)
	})

	t.Run("complex unconjugated and conjugated", func(t *testing.T) {
		q, api := newQueue(t)
		x := clblasttest.BufferOf[complex128](1 + 1i)
		y := clblasttest.BufferOf[complex128](1 + 1i)
		out := clblasttest.NewBuffer[complex128](2)
		require.NoError(t, clblast.NewDot(q, 1, x.Vector(), y.Vector(), out.Vector()).Run())
		require.NoError(t, clblast.NewDotConjugate(q, 1, x.Vector(), y.Vector(), out.Vector().WithOffset(1)).Run())
		assert.Equal(t, []complex128{2i, 2}, out.Data)
		assert.Equal(t, 1, api.Calls("Zdotu"))
		assert.Equal(t, 1, api.Calls("Zdotc"))
	})
}

func TestShapeFailureSkipsNative(t *testing.T) {
	q, api := newQueue(t)
	short := clblasttest.NewBuffer[float32](2)
	long := clblasttest.NewBuffer[float32](3)

	cases := map[string]func() error{
		"axpy short y": func() error { return clblast.NewAxpy(q, 3, long.Vector(), short.Vector()).Run() },
		"zero inc":     func() error { return clblast.NewScale(q, 1, long.Vector()).XInc(0).Run() },
		"sum no slot":  func() error { return clblast.NewSum(q, 1, long.Vector(), short.Vector().WithOffset(2)).Run() },
		"gemm k mismatch": func() error {
			return clblast.NewGemm(q,
				matrixOf(t, clblasttest.NewBuffer[float32](6), 2, 3, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](4), 2, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](4), 2, 2, clblast.RowMajor),
			).Run()
		},
		"scale inc overflows": func() error {
			return clblast.NewScale(q, 4, clblasttest.NewBuffer[float32](4).Vector()).XInc(math.MaxInt/4 + 2).Run()
		},
		"copy count overflows": func() error {
			return clblast.NewCopy(q, math.MaxInt, long.Vector(), long.Vector()).XInc(2).YInc(2).Run()
		},
		// Only fits if op(A) were A^T.
		"gemm unknown transpose a": func() error {
			return clblast.NewGemm(q,
				matrixOf(t, clblasttest.NewBuffer[float32](6), 2, 3, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](8), 2, 4, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](12), 3, 4, clblast.RowMajor),
			).TransposeA(clblast.Transpose(7)).Run()
		},
		"gemm unknown transpose b": func() error {
			return clblast.NewGemm(q,
				matrixOf(t, clblasttest.NewBuffer[float32](4), 2, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](4), 2, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](4), 2, 2, clblast.RowMajor),
			).TransposeB(clblast.Transpose(-1)).Run()
		},
		"symm unknown side": func() error {
			return clblast.NewSymm(q, clblast.Side(5), clblast.Upper,
				matrixOf(t, clblasttest.NewBuffer[float32](9), 3, 3, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
			).Run()
		},
		"symm unknown triangle": func() error {
			return clblast.NewSymm(q, clblast.Left, clblast.Triangle(9),
				matrixOf(t, clblasttest.NewBuffer[float32](9), 3, 3, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
			).Run()
		},
		"symm wrong side": func() error {
			return clblast.NewSymm(q, clblast.Right, clblast.Upper,
				matrixOf(t, clblasttest.NewBuffer[float32](9), 3, 3, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
				matrixOf(t, clblasttest.NewBuffer[float32](6), 3, 2, clblast.RowMajor),
			).Run()
		},
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			err := run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, clblast.ErrShape))
			var call *clblast.CallError
			assert.False(t, errors.As(err, &call))
		})
	}
	assert.Zero(t, api.Total())
}

func TestDescriptorIsSingleUse(t *testing.T) {
	q, api := newQueue(t)
	x := clblasttest.BufferOf[float32](1, 2)
	y := clblasttest.NewBuffer[float32](2)

	cp := clblast.NewCopy(q, 2, x.Vector(), y.Vector())
	require.NoError(t, cp.Run())
	assert.ErrorIs(t, cp.Run(), clblast.ErrConsumed)
	assert.Equal(t, 1, api.Calls("Scopy"))

	t.Run("failed validation still consumes", func(t *testing.T) {
		bad := clblast.NewCopy(q, 5, x.Vector(), y.Vector())
		assert.ErrorIs(t, bad.Run(), clblast.ErrShape)
		assert.ErrorIs(t, bad.Run(), clblast.ErrConsumed)
	})
}

func TestNativeStatusIsTranslated(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		q, api := newQueue(t)
		api.Fail("Sgemm", native.InvalidLeadDimA)
		buf := clblasttest.NewBuffer[float32](1)
		m := matrixOf(t, buf, 1, 1, clblast.RowMajor)

		err := clblast.NewGemm(q, m, m, m).Run()
		require.Error(t, err)
		assert.ErrorIs(t, err, clblast.InvalidLeadDimA)
		assert.False(t, errors.Is(err, clblast.ErrShape))

		var call *clblast.CallError
		require.True(t, errors.As(err, &call))
		assert.Equal(t, "Sgemm", call.Routine)
		assert.Equal(t, native.InvalidLeadDimA, call.Status)
		assert.Equal(t, clblast.CategoryBLAS, clblast.CategoryOf(err))
	})

	t.Run("unknown code is preserved", func(t *testing.T) {
		q, api := newQueue(t)
		api.Fail("iCamax", native.Status(-12345))
		out := clblasttest.NewBuffer[uint32](1)
		err := clblast.NewAbsMaxIndex(q, 0, clblasttest.NewBuffer[complex64](0).Vector(), out.Vector()).Run()

		var unrecognized *clblast.UnrecognizedStatusError
		require.True(t, errors.As(err, &unrecognized))
		assert.Equal(t, native.Status(-12345), unrecognized.Code)
	})

	t.Run("double precision unsupported", func(t *testing.T) {
		q, api := newQueue(t)
		api.Fail("Dnrm2", native.NoDoublePrecision)
		err := clblast.NewNorm2(q, 1, clblasttest.NewBuffer[float64](1).Vector(), clblasttest.NewBuffer[float64](1).Vector()).Run()
		assert.ErrorIs(t, err, clblast.NoDoublePrecision)
		assert.Equal(t, clblast.CategoryInternal, clblast.CategoryOf(err))
	})
}

func TestEvent(t *testing.T) {
	q, api := newQueue(t)
	x := clblasttest.BufferOf[float32](1)
	y := clblasttest.NewBuffer[float32](1)

	var ev clblast.Event
	assert.False(t, ev.Valid())
	require.NoError(t, clblast.NewAxpy(q, 1, x.Vector(), y.Vector()).Event(&ev).Run())
	assert.True(t, ev.Valid())
	assert.Equal(t, "Saxpy", clblasttest.EventRoutine(ev.Handle()))
	assert.Equal(t, 1, api.Events())

	ev.Reset()
	assert.False(t, ev.Valid())

	require.NoError(t, clblast.NewAxpy(q, 1, x.Vector(), y.Vector()).Run())
	assert.Equal(t, 1, api.Events(), "no event requested")

	var none *clblast.Event
	assert.Nil(t, none.Handle())
	assert.False(t, none.Valid())
}

type call struct {
	routine string
	err     error
}

type recorder struct {
	calls []call
}

func (r *recorder) ObserveCall(routine string, err error, _ time.Duration) {
	r.calls = append(r.calls, call{routine, err})
}

func TestObserver(t *testing.T) {
	rec := &recorder{}
	q, _ := newQueue(t, clblast.WithObserver(rec))
	x := clblasttest.BufferOf[float64](1, 2)
	out := clblasttest.NewBuffer[float64](1)

	require.NoError(t, clblast.NewAbsoluteSum(q, 2, x.Vector(), out.Vector()).Run())
	assert.Error(t, clblast.NewAbsoluteSum(q, 3, x.Vector(), out.Vector()).Run())

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "Dasum", rec.calls[0].routine)
	assert.NoError(t, rec.calls[0].err)
	assert.True(t, clblast.IsShape(rec.calls[1].err))
}

func TestNilHandles(t *testing.T) {
	api := clblasttest.New()
	lib, err := clblast.New(clblast.WithNative(api))
	require.NoError(t, err)
	x := clblasttest.BufferOf[float32](1)

	err = clblast.NewScale(lib.Queue(clblasttest.NullQueue{}), 1, x.Vector()).Run()
	assert.ErrorIs(t, err, clblast.ErrNilHandle)
	err = clblast.NewScale(lib.Queue(nil), 1, x.Vector()).Run()
	assert.ErrorIs(t, err, clblast.ErrNilHandle)
	err = clblast.NewScale[float32](nil, 1, x.Vector()).Run()
	assert.ErrorIs(t, err, clblast.ErrNilHandle)
	assert.Zero(t, api.Total())
}

func TestCache(t *testing.T) {
	api := clblasttest.New()
	lib, err := clblast.New(clblast.WithNative(api))
	require.NoError(t, err)

	assert.NoError(t, lib.ClearCache())
	assert.NoError(t, lib.FillCache(&clblasttest.Device{Name: "host"}))
	assert.ErrorIs(t, lib.FillCache(nil), clblast.ErrNilHandle)
	assert.Equal(t, 1, api.Calls("FillCache"))

	api.Fail("ClearCache", native.InvalidCommandQueue)
	err = lib.ClearCache()
	assert.ErrorIs(t, err, clblast.InvalidCommandQueue)
	var call *clblast.CallError
	require.True(t, errors.As(err, &call))
	assert.Equal(t, "ClearCache", call.Routine)
}
