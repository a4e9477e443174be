// Package dataset loads the restaurant dataset and holds it as immutable
// process-wide state. The data is read once through DuckDB (Parquet primary,
// CSV fallback) and kept in columnar form; everything downstream works on
// views into these columns and never mutates them.
package dataset

import "fmt"

// Column names as they appear in the source files.
const (
	ColLocation    = "location"
	ColRestType    = "rest_type"
	ColOnlineOrder = "online_order"
	ColBookTable   = "book_table"
	ColRate        = "rate"
	ColCost        = "cost"
)

// artifactColumn is a leftover index column written by some exporters.
// It is dropped at load time when present.
const artifactColumn = "Unnamed: 0"

// CategoricalMaxDistinct is the distinct-value count below which a column is
// treated as categorical even when its storage type is numeric. The same
// constant drives both the pie-vs-histogram choice and the
// describe-vs-value-counts choice; keep it single-sourced.
const CategoricalMaxDistinct = 20

// ColumnKind classifies a column once at load time so use sites never have
// to re-infer it.
type ColumnKind int

const (
	KindNumeric ColumnKind = iota
	KindCategorical
)

// String returns the kind name for logs and JSON.
func (k ColumnKind) String() string {
	if k == KindCategorical {
		return "categorical"
	}
	return "numeric"
}

// Column is per-column metadata computed at load time.
type Column struct {
	Name     string     `json:"name"`
	Kind     ColumnKind `json:"-"`
	KindName string     `json:"kind"`
	Distinct int        `json:"distinct"`
}

// Dataset is the full restaurant dataset in column-major form. All slices
// have equal length and are never modified after Load returns.
type Dataset struct {
	Locations   []string
	RestTypes   []string
	OnlineOrder []string
	BookTable   []string
	Rates       []float64
	Costs       []float64

	columns []Column
}

// New builds a Dataset from parallel column slices and computes the
// per-column kind metadata. All slices must have the same length.
func New(locations, restTypes, onlineOrder, bookTable []string, rates, costs []float64) (*Dataset, error) {
	n := len(locations)
	if len(restTypes) != n || len(onlineOrder) != n || len(bookTable) != n ||
		len(rates) != n || len(costs) != n {
		return nil, fmt.Errorf("column lengths differ")
	}
	d := &Dataset{
		Locations:   locations,
		RestTypes:   restTypes,
		OnlineOrder: onlineOrder,
		BookTable:   bookTable,
		Rates:       rates,
		Costs:       costs,
	}
	d.classify()
	return d, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Locations) }

// Columns returns metadata for all analysable columns in source order.
func (d *Dataset) Columns() []Column { return d.columns }

// Column looks up metadata for a named column.
func (d *Dataset) Column(name string) (Column, bool) {
	for _, c := range d.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Categorical returns the string column with the given name.
func (d *Dataset) Categorical(name string) ([]string, bool) {
	switch name {
	case ColLocation:
		return d.Locations, true
	case ColRestType:
		return d.RestTypes, true
	case ColOnlineOrder:
		return d.OnlineOrder, true
	case ColBookTable:
		return d.BookTable, true
	}
	return nil, false
}

// Numeric returns the float column with the given name.
func (d *Dataset) Numeric(name string) ([]float64, bool) {
	switch name {
	case ColRate:
		return d.Rates, true
	case ColCost:
		return d.Costs, true
	}
	return nil, false
}

// NumericColumns returns the names of the columns stored as floats, in
// source order. Correlation runs over these regardless of the kind tag,
// which only governs chart and stats-table selection.
func (d *Dataset) NumericColumns() []string {
	return []string{ColRate, ColCost}
}

// DistinctLocations returns distinct location values in first-encounter
// order. The sidebar uses the first five as the default selection.
func (d *Dataset) DistinctLocations() []string {
	return distinct(d.Locations)
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// classify computes column metadata. A column is categorical when its
// storage type is non-numeric or its distinct count falls below
// CategoricalMaxDistinct.
func (d *Dataset) classify() {
	d.columns = []Column{
		categoricalColumn(ColLocation, d.Locations),
		categoricalColumn(ColRestType, d.RestTypes),
		categoricalColumn(ColOnlineOrder, d.OnlineOrder),
		categoricalColumn(ColBookTable, d.BookTable),
		numericColumn(ColRate, d.Rates),
		numericColumn(ColCost, d.Costs),
	}
}

func categoricalColumn(name string, values []string) Column {
	return Column{
		Name:     name,
		Kind:     KindCategorical,
		KindName: KindCategorical.String(),
		Distinct: len(distinct(values)),
	}
}

func numericColumn(name string, values []float64) Column {
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	kind := KindNumeric
	if len(seen) < CategoricalMaxDistinct {
		kind = KindCategorical
	}
	return Column{
		Name:     name,
		Kind:     kind,
		KindName: kind.String(),
		Distinct: len(seen),
	}
}
