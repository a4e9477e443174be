// Package home provides the dashboard overview feature: KPIs and a preview
// of the filtered data.
package home

import (
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
)

// Overview is the payload for the Home page.
type Overview struct {
	KPIs     charts.KPIs `json:"kpis"`
	RowCount int         `json:"rowCount"`
	Preview  Preview     `json:"preview"`
}

// Preview is the head of the filtered view rendered as strings.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Meta describes the current dataset generation and the sidebar options.
type Meta struct {
	Generation       string           `json:"generation"`
	LoadedAt         string           `json:"loadedAt"`
	Rows             int              `json:"rows"`
	Locations        []string         `json:"locations"`
	DefaultSelection []string         `json:"defaultSelection"`
	ColumnChoices    []string         `json:"columnChoices"`
	Columns          []dataset.Column `json:"columns"`
}
