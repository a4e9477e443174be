// Package multivariate provides the correlation heatmap and the cost
// treemap feature.
package multivariate

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/features/common"
)

// Analysis is the payload for the Multivariate page.
type Analysis struct {
	Heatmap charts.Chart `json:"heatmap"`
	Treemap charts.Chart `json:"treemap"`
}

// Handlers provides HTTP handlers for the multivariate feature.
type Handlers struct {
	data         dataset.Provider
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(data dataset.Provider, sessionStore sessions.Store) *Handlers {
	return &Handlers{data: data, sessionStore: sessionStore}
}

// Analyze serves the heatmap and treemap for the current filter.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	ds, err := h.data.Get(r.Context())
	if err != nil {
		http.Error(w, common.LoadErrorMessage, http.StatusInternalServerError)
		return
	}

	sel := common.ParseSelection(r, w, h.sessionStore, ds)
	view := analytics.Filter(ds, sel.Locations)

	common.RespondJSON(w, Analysis{
		Heatmap: charts.CorrelationHeatmap(view),
		Treemap: charts.CostTreemap(view),
	})
}
