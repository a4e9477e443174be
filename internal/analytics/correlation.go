package analytics

import "math"

// Correlation holds a pairwise Pearson matrix over the numeric columns.
// Cells with fewer than two rows or zero variance are NaN, including the
// diagonal; presentation maps NaN to null rather than failing.
type Correlation struct {
	Columns []string
	Matrix  [][]float64
}

// CorrelationMatrix computes pairwise Pearson coefficients over the view's
// numeric columns. The matrix is symmetric by construction.
func CorrelationMatrix(v View) Correlation {
	cols := v.Dataset().NumericColumns()
	series := make([][]float64, len(cols))
	for i, col := range cols {
		series[i] = v.NumericValues(col)
	}

	matrix := make([][]float64, len(cols))
	for i := range cols {
		matrix[i] = make([]float64, len(cols))
		for j := range cols {
			if j < i {
				matrix[i][j] = matrix[j][i]
				continue
			}
			matrix[i][j] = pearson(series[i], series[j])
		}
	}
	return Correlation{Columns: cols, Matrix: matrix}
}

// pearson returns the Pearson correlation coefficient of two equal-length
// series, or NaN when it is undefined.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return math.NaN()
	}

	mx := Mean(xs)
	my := Mean(ys)

	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		dy := ys[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}
