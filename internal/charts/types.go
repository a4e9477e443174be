// Package charts maps aggregation results to render-ready chart descriptors
// and KPI scalars. Builders do formatting only; every number they emit comes
// from the analytics package. Descriptors are serialized to JSON and drawn
// by the embedded Plotly shell.
package charts

// Kind identifies how the frontend should draw a chart.
type Kind string

const (
	KindPie       Kind = "pie"
	KindHistogram Kind = "histogram"
	KindScatter   Kind = "scatter"
	KindBar       Kind = "bar"
	KindBox       Kind = "box"
	KindHeatmap   Kind = "heatmap"
	KindTreemap   Kind = "treemap"
)

// Chart is a render-ready chart descriptor. Exactly the fields relevant to
// its Kind are populated; Warning replaces the payload when the filtered
// view cannot support the chart (for example a treemap over zero rows).
type Chart struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	XLabel string `json:"xLabel,omitempty"`
	YLabel string `json:"yLabel,omitempty"`

	// Warning is a user-facing message shown instead of the chart.
	Warning string `json:"warning,omitempty"`

	// Pie and bar payloads.
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`

	// Histogram payload.
	Samples []float64 `json:"samples,omitempty"`
	Bins    int       `json:"bins,omitempty"`

	// Scatter and box payloads, one series per group value.
	Series []Series `json:"series,omitempty"`

	// Heatmap payload. Cells are null where the coefficient is undefined.
	MatrixColumns []string     `json:"matrixColumns,omitempty"`
	Matrix        [][]*float64 `json:"matrix,omitempty"`

	// Treemap payload.
	Tree []TreeNode `json:"tree,omitempty"`

	// Orientation is "h" for horizontal bars.
	Orientation string `json:"orientation,omitempty"`
	Colorscale  string `json:"colorscale,omitempty"`
}

// Series is one named group of points within a scatter or box chart.
type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x,omitempty"`
	Y    []float64 `json:"y"`
}

// TreeNode is one (location, restaurant type) cell of the cost treemap.
type TreeNode struct {
	Location string  `json:"location"`
	RestType string  `json:"restType"`
	Value    float64 `json:"value"`
}

// StatsKind says which stats table a column gets.
type StatsKind string

const (
	StatsDescribe StatsKind = "describe"
	StatsCounts   StatsKind = "counts"
)
