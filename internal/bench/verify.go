package bench

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// reference computes the row-major product of a (m×k) and b (k×n) in double
// precision.
func reference(a, b []float32, m, k, n int) *mat.Dense {
	var c mat.Dense
	c.Mul(mat.NewDense(m, k, widen(a)), mat.NewDense(k, n, widen(b)))
	return &c
}

// maxError returns the largest element-wise error of got against want,
// relative to the element's magnitude once that exceeds one.
func maxError(want *mat.Dense, got []float32) float64 {
	rows, cols := want.Dims()
	if len(got) != rows*cols {
		return math.Inf(1)
	}
	worst := 0.0
	for i := range rows {
		for j := range cols {
			w := want.At(i, j)
			diff := math.Abs(float64(got[i*cols+j])-w) / math.Max(1, math.Abs(w))
			if math.IsNaN(diff) {
				return math.Inf(1)
			}
			worst = math.Max(worst, diff)
		}
	}
	return worst
}

func widen(input []float32) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v)
	}
	return output
}
