package charts

import (
	"fmt"
	"math"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/dataset"
)

const histogramBins = 30

// emptyViewWarning matches the sidebar hint shown when a selection excludes
// every row.
const emptyViewWarning = "Please select at least one location from the sidebar."

// Distribution builds the univariate distribution chart for a column: a pie
// for categorical-kind columns, a 30-bin histogram otherwise. The kind tag
// was computed once at load time, so pie-vs-histogram and
// describe-vs-counts always agree.
func Distribution(v analytics.View, col string) Chart {
	title := fmt.Sprintf("Distribution of %s", col)
	if v.Len() == 0 {
		return warningChart(KindPie, title)
	}

	meta, ok := v.Dataset().Column(col)
	if !ok {
		return Chart{Kind: KindPie, Title: title, Warning: fmt.Sprintf("Unknown column %q.", col)}
	}

	if meta.Kind == dataset.KindCategorical {
		counts := analytics.ValueCounts(v, col)
		labels := make([]string, len(counts))
		values := make([]float64, len(counts))
		for i, c := range counts {
			labels[i] = c.Value
			values[i] = float64(c.Count)
		}
		return Chart{Kind: KindPie, Title: title, Labels: labels, Values: values}
	}

	return Chart{
		Kind:    KindHistogram,
		Title:   title,
		XLabel:  col,
		Samples: v.NumericValues(col),
		Bins:    histogramBins,
	}
}

// CostRateScatter plots cost-for-two against rating, one series per
// online-order flag value.
func CostRateScatter(v analytics.View) Chart {
	title := "Cost vs Rate Correlation"
	if v.Len() == 0 {
		return warningChart(KindScatter, title)
	}

	points := make(map[string]*Series)
	var order []string
	n := v.Len()
	for i := 0; i < n; i++ {
		flag := v.Categorical(dataset.ColOnlineOrder, i)
		s := points[flag]
		if s == nil {
			s = &Series{Name: flag}
			points[flag] = s
			order = append(order, flag)
		}
		s.X = append(s.X, v.Numeric(dataset.ColCost, i))
		s.Y = append(s.Y, v.Numeric(dataset.ColRate, i))
	}

	series := make([]Series, 0, len(order))
	for _, flag := range order {
		series = append(series, *points[flag])
	}
	return Chart{
		Kind:   KindScatter,
		Title:  title,
		XLabel: dataset.ColCost,
		YLabel: dataset.ColRate,
		Series: series,
	}
}

// TopLocationsBar builds the horizontal top-10 locations bar chart.
func TopLocationsBar(v analytics.View) Chart {
	title := fmt.Sprintf("Top %d Locations", analytics.TopLocationCount)
	if v.Len() == 0 {
		return warningChart(KindBar, title)
	}

	top := analytics.TopN(v, dataset.ColLocation, analytics.TopLocationCount)
	labels := make([]string, len(top))
	values := make([]float64, len(top))
	for i, c := range top {
		labels[i] = c.Value
		values[i] = float64(c.Count)
	}
	return Chart{
		Kind:        KindBar,
		Title:       title,
		XLabel:      "count",
		YLabel:      dataset.ColLocation,
		Labels:      labels,
		Values:      values,
		Orientation: "h",
	}
}

// BookingRatingBox builds the rating box plot split by the table-booking flag.
func BookingRatingBox(v analytics.View) Chart {
	title := "Do restaurants with Table Booking have higher ratings?"
	if v.Len() == 0 {
		return warningChart(KindBox, title)
	}

	groups := make(map[string]*Series)
	var order []string
	n := v.Len()
	for i := 0; i < n; i++ {
		flag := v.Categorical(dataset.ColBookTable, i)
		s := groups[flag]
		if s == nil {
			s = &Series{Name: flag}
			groups[flag] = s
			order = append(order, flag)
		}
		s.Y = append(s.Y, v.Numeric(dataset.ColRate, i))
	}

	series := make([]Series, 0, len(order))
	for _, flag := range order {
		series = append(series, *groups[flag])
	}
	return Chart{
		Kind:   KindBox,
		Title:  title,
		XLabel: dataset.ColBookTable,
		YLabel: dataset.ColRate,
		Series: series,
	}
}

// CorrelationHeatmap builds the numeric-column Pearson heatmap. Undefined
// coefficients become null cells rather than breaking serialization.
func CorrelationHeatmap(v analytics.View) Chart {
	title := "Correlation Heatmap"
	corr := analytics.CorrelationMatrix(v)

	matrix := make([][]*float64, len(corr.Matrix))
	for i, row := range corr.Matrix {
		matrix[i] = make([]*float64, len(row))
		for j, val := range row {
			if math.IsNaN(val) {
				continue
			}
			c := val
			matrix[i][j] = &c
		}
	}
	return Chart{
		Kind:          KindHeatmap,
		Title:         title,
		MatrixColumns: corr.Columns,
		Matrix:        matrix,
		Colorscale:    "RdBu",
	}
}

// CostTreemap builds the location → restaurant-type cost hierarchy. The
// treemap needs at least one row per rendered cell, so an empty view gets a
// warning instead.
func CostTreemap(v analytics.View) Chart {
	title := "Cost Hierarchy (Treemap)"
	if v.Len() == 0 {
		return warningChart(KindTreemap, title)
	}

	cells := analytics.GroupMeanCost(v)
	tree := make([]TreeNode, 0, len(cells))
	for _, c := range cells {
		tree = append(tree, TreeNode{
			Location: c.Location,
			RestType: c.RestType,
			Value:    round2(c.MeanCost),
		})
	}
	return Chart{
		Kind:       KindTreemap,
		Title:      title,
		Tree:       tree,
		Colorscale: "Magma",
	}
}

func warningChart(kind Kind, title string) Chart {
	return Chart{Kind: kind, Title: title, Warning: emptyViewWarning}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
