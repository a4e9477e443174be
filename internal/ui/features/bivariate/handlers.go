// Package bivariate provides the two-column analysis feature: the
// cost-vs-rating scatter, the top-locations bar, and the booking box plot.
package bivariate

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/features/common"
)

// Analysis is the payload for the Bivariate page, one chart per tab.
type Analysis struct {
	Scatter      charts.Chart `json:"scatter"`
	TopLocations charts.Chart `json:"topLocations"`
	BookingBox   charts.Chart `json:"bookingBox"`
}

// Handlers provides HTTP handlers for the bivariate feature.
type Handlers struct {
	data         dataset.Provider
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(data dataset.Provider, sessionStore sessions.Store) *Handlers {
	return &Handlers{data: data, sessionStore: sessionStore}
}

// Analyze serves all three bivariate charts for the current filter.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	ds, err := h.data.Get(r.Context())
	if err != nil {
		http.Error(w, common.LoadErrorMessage, http.StatusInternalServerError)
		return
	}

	sel := common.ParseSelection(r, w, h.sessionStore, ds)
	view := analytics.Filter(ds, sel.Locations)

	common.RespondJSON(w, Analysis{
		Scatter:      charts.CostRateScatter(view),
		TopLocations: charts.TopLocationsBar(view),
		BookingBox:   charts.BookingRatingBox(view),
	})
}
