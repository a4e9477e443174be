// Package univariate provides the single-column analysis feature:
// distribution chart plus a stats table for the selected column.
package univariate

import (
	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
)

// Analysis is the payload for the Univariate page.
type Analysis struct {
	Column string       `json:"column"`
	Chart  charts.Chart `json:"chart"`
	Stats  Stats        `json:"stats"`
}

// Stats is either a describe() summary (numeric-kind columns) or a
// value-frequency table (categorical-kind columns); Kind says which.
type Stats struct {
	Kind    charts.StatsKind       `json:"kind"`
	Summary *SummaryView           `json:"summary,omitempty"`
	Counts  []analytics.ValueCount `json:"counts,omitempty"`
}

// SummaryView is the describe() table with display-formatted values. NaN
// fields (std of a single row) render as "NaN" strings rather than breaking
// JSON encoding.
type SummaryView struct {
	Count  int    `json:"count"`
	Mean   string `json:"mean"`
	Std    string `json:"std"`
	Min    string `json:"min"`
	Q1     string `json:"q1"`
	Median string `json:"median"`
	Q3     string `json:"q3"`
	Max    string `json:"max"`
}
