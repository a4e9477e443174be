package univariate

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/features/common"
)

// DefaultColumn is analysed when the request does not pick one.
const DefaultColumn = dataset.ColRate

// Handlers provides HTTP handlers for the univariate feature.
type Handlers struct {
	data         dataset.Provider
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(data dataset.Provider, sessionStore sessions.Store) *Handlers {
	return &Handlers{data: data, sessionStore: sessionStore}
}

// Analyze serves the distribution chart and stats table for one column.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	ds, err := h.data.Get(r.Context())
	if err != nil {
		http.Error(w, common.LoadErrorMessage, http.StatusInternalServerError)
		return
	}

	col := r.URL.Query().Get("col")
	if col == "" {
		col = DefaultColumn
	}
	meta, ok := ds.Column(col)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown column %q", col), http.StatusBadRequest)
		return
	}

	sel := common.ParseSelection(r, w, h.sessionStore, ds)
	view := analytics.Filter(ds, sel.Locations)

	common.RespondJSON(w, Analysis{
		Column: col,
		Chart:  charts.Distribution(view, col),
		Stats:  buildStats(view, meta),
	})
}

// buildStats picks describe() or value counts using the column kind tag,
// the same tag that drove the pie-vs-histogram choice.
func buildStats(view analytics.View, meta dataset.Column) Stats {
	if meta.Kind == dataset.KindCategorical {
		return Stats{
			Kind:   charts.StatsCounts,
			Counts: analytics.ValueCounts(view, meta.Name),
		}
	}

	summary, err := analytics.Describe(view, meta.Name)
	if err != nil {
		// Numeric-kind columns always have float storage; a failure here
		// means the metadata and storage disagree.
		return Stats{Kind: charts.StatsCounts, Counts: analytics.ValueCounts(view, meta.Name)}
	}
	return Stats{
		Kind: charts.StatsDescribe,
		Summary: &SummaryView{
			Count:  summary.Count,
			Mean:   formatStat(summary.Mean),
			Std:    formatStat(summary.Std),
			Min:    formatStat(summary.Min),
			Q1:     formatStat(summary.Q1),
			Median: formatStat(summary.Median),
			Q3:     formatStat(summary.Q3),
			Max:    formatStat(summary.Max),
		},
	}
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
