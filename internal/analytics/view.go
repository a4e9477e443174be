// Package analytics implements the filter-and-aggregate pipeline between the
// immutable dataset and the chart builders. Everything here is pure and
// stateless: a View is an index list into the dataset, aggregations are
// recomputed from the current View on every request, and nothing is cached.
package analytics

import (
	"strconv"

	"github.com/zest-labs/zest/internal/dataset"
)

// View is a read-only subset of the dataset, expressed as row indices.
// A nil index slice means the whole dataset (the fallback-to-all case
// avoids materialising an identity index).
type View struct {
	ds  *dataset.Dataset
	idx []int
	all bool
}

// NewView returns a view over the entire dataset.
func NewView(ds *dataset.Dataset) View {
	return View{ds: ds, all: true}
}

func newSubView(ds *dataset.Dataset, idx []int) View {
	return View{ds: ds, idx: idx}
}

// Len returns the number of rows in the view.
func (v View) Len() int {
	if v.all {
		return v.ds.Len()
	}
	return len(v.idx)
}

// Dataset returns the backing dataset.
func (v View) Dataset() *dataset.Dataset { return v.ds }

// row maps a view position to an underlying dataset row.
func (v View) row(i int) int {
	if v.all {
		return i
	}
	return v.idx[i]
}

// Categorical returns the value of a string column at view position i.
// Unknown columns read as empty, matching how absent dimensions behave.
func (v View) Categorical(col string, i int) string {
	vals, ok := v.ds.Categorical(col)
	if !ok {
		return ""
	}
	return vals[v.row(i)]
}

// Numeric returns the value of a float column at view position i.
func (v View) Numeric(col string, i int) float64 {
	vals, ok := v.ds.Numeric(col)
	if !ok {
		return 0
	}
	return vals[v.row(i)]
}

// Label returns a display value for any column at view position i. Float
// columns are formatted with minimal digits so that a numeric column tagged
// categorical (few distinct values) can still feed a pie slice or a
// value-counts row.
func (v View) Label(col string, i int) string {
	if vals, ok := v.ds.Categorical(col); ok {
		return vals[v.row(i)]
	}
	if vals, ok := v.ds.Numeric(col); ok {
		return strconv.FormatFloat(vals[v.row(i)], 'g', -1, 64)
	}
	return ""
}

// NumericValues copies a float column restricted to the view.
func (v View) NumericValues(col string) []float64 {
	vals, ok := v.ds.Numeric(col)
	if !ok {
		return nil
	}
	if v.all {
		out := make([]float64, len(vals))
		copy(out, vals)
		return out
	}
	out := make([]float64, len(v.idx))
	for i, r := range v.idx {
		out[i] = vals[r]
	}
	return out
}
