package home

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/analytics"
	"github.com/zest-labs/zest/internal/charts"
	"github.com/zest-labs/zest/internal/dataset"
	"github.com/zest-labs/zest/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	data         dataset.Provider
	sessionStore sessions.Store
	previewLimit int
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(data dataset.Provider, sessionStore sessions.Store, previewLimit int) *Handlers {
	return &Handlers{
		data:         data,
		sessionStore: sessionStore,
		previewLimit: previewLimit,
	}
}

// Overview serves the Home page KPIs and data preview.
func (h *Handlers) Overview(w http.ResponseWriter, r *http.Request) {
	ds, err := h.data.Get(r.Context())
	if err != nil {
		http.Error(w, common.LoadErrorMessage, http.StatusInternalServerError)
		return
	}

	sel := common.ParseSelection(r, w, h.sessionStore, ds)
	view := analytics.Filter(ds, sel.Locations)

	common.RespondJSON(w, Overview{
		KPIs:     charts.BuildKPIs(view),
		RowCount: view.Len(),
		Preview:  buildPreview(view, h.previewLimit),
	})
}

// Meta serves dataset metadata and the sidebar options.
func (h *Handlers) Meta(w http.ResponseWriter, r *http.Request) {
	ds, err := h.data.Get(r.Context())
	if err != nil {
		http.Error(w, common.LoadErrorMessage, http.StatusInternalServerError)
		return
	}

	common.RespondJSON(w, Meta{
		Generation:       h.data.Generation(),
		LoadedAt:         h.data.LoadedAt().Format(time.RFC3339),
		Rows:             ds.Len(),
		Locations:        ds.DistinctLocations(),
		DefaultSelection: common.DefaultSelection(ds),
		ColumnChoices: []string{
			dataset.ColRate, dataset.ColCost, dataset.ColOnlineOrder,
			dataset.ColBookTable, dataset.ColRestType,
		},
		Columns: ds.Columns(),
	})
}

// buildPreview renders the head of the view as display strings.
func buildPreview(v analytics.View, limit int) Preview {
	n := v.Len()
	if n > limit {
		n = limit
	}

	cols := []string{
		dataset.ColLocation, dataset.ColRestType, dataset.ColOnlineOrder,
		dataset.ColBookTable, dataset.ColRate, dataset.ColCost,
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{
			v.Categorical(dataset.ColLocation, i),
			v.Categorical(dataset.ColRestType, i),
			v.Categorical(dataset.ColOnlineOrder, i),
			v.Categorical(dataset.ColBookTable, i),
			strconv.FormatFloat(v.Numeric(dataset.ColRate, i), 'f', 1, 64),
			strconv.FormatFloat(v.Numeric(dataset.ColCost, i), 'f', 0, 64),
		})
	}
	return Preview{Columns: cols, Rows: rows}
}
