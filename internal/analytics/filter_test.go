package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zest-labs/zest/internal/dataset"
)

// threeRowDataset is the minimal hand-checkable dataset used across the
// package tests: two Indiranagar rows and one BTM row.
func threeRowDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"Indiranagar", "Indiranagar", "BTM"},
		[]string{"Casual Dining", "Quick Bites", "Cafe"},
		[]string{"Yes", "No", "Yes"},
		[]string{"Yes", "No", "No"},
		[]float64{4.0, 3.0, 5.0},
		[]float64{600, 400, 800},
	)
	require.NoError(t, err)
	return ds
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		wantLen   int
		wantMean  float64
	}{
		{
			name:      "empty selection falls back to all rows",
			locations: nil,
			wantLen:   3,
			wantMean:  4.0,
		},
		{
			name:      "single location keeps matching rows",
			locations: []string{"Indiranagar"},
			wantLen:   2,
			wantMean:  3.5,
		},
		{
			name:      "multiple locations union",
			locations: []string{"Indiranagar", "BTM"},
			wantLen:   3,
			wantMean:  4.0,
		},
		{
			name:      "unknown location matches nothing",
			locations: []string{"Electronic City"},
			wantLen:   0,
		},
	}

	ds := threeRowDataset(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Filter(ds, tt.locations)

			assert.Equal(t, tt.wantLen, view.Len())
			if tt.wantLen > 0 {
				assert.InDelta(t, tt.wantMean, Mean(view.NumericValues(dataset.ColRate)), 1e-9)
			}
		})
	}
}

func TestFilter_PreservesRowOrder(t *testing.T) {
	ds := threeRowDataset(t)

	view := Filter(ds, []string{"Indiranagar"})
	require.Equal(t, 2, view.Len())

	assert.Equal(t, "Casual Dining", view.Categorical(dataset.ColRestType, 0))
	assert.Equal(t, "Quick Bites", view.Categorical(dataset.ColRestType, 1))
	assert.Equal(t, []float64{600, 400}, view.NumericValues(dataset.ColCost))
}

func TestFilter_ExactMatchOnly(t *testing.T) {
	ds := threeRowDataset(t)

	// Substrings and case variants do not match.
	assert.Equal(t, 0, Filter(ds, []string{"indiranagar"}).Len())
	assert.Equal(t, 0, Filter(ds, []string{"Indira"}).Len())
}

func TestView_Label(t *testing.T) {
	ds := threeRowDataset(t)
	view := NewView(ds)

	assert.Equal(t, "BTM", view.Label(dataset.ColLocation, 2))
	// Numeric columns format with minimal digits.
	assert.Equal(t, "4", view.Label(dataset.ColRate, 0))
	assert.Equal(t, "600", view.Label(dataset.ColCost, 0))
	assert.Equal(t, "", view.Label("no_such_column", 0))
}

func TestView_NumericValuesCopies(t *testing.T) {
	ds := threeRowDataset(t)
	view := NewView(ds)

	values := view.NumericValues(dataset.ColRate)
	values[0] = 99

	assert.Equal(t, 4.0, ds.Rates[0], "mutating the copy must not touch the dataset")
}
