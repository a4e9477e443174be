package common

import (
	"encoding/gob"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/dataset"
)

func init() {
	// The session codec gob-encodes values; the selection is a []string.
	gob.Register([]string{})
}

const (
	sessionName   = "zest-ui"
	sessionLocKey = "locations"
)

// LoadErrorMessage is the user-facing message when the dataset cannot load.
const LoadErrorMessage = "Data could not be loaded. Please check the file."

// RespondJSON writes v as JSON. Serialization failures become a 500; chart
// descriptors are NaN-free by construction so this only fires on bugs.
func RespondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ParseSelection resolves the location filter for a request.
// Priority: explicit loc query parameters > selection remembered in the
// session cookie > the first-five-distinct default. The session cookie is
// session-scoped, so nothing survives a closed browser.
func ParseSelection(r *http.Request, w http.ResponseWriter, store sessions.Store, ds *dataset.Dataset) Selection {
	query := r.URL.Query()
	if _, ok := query["loc"]; ok {
		locs := normalize(query["loc"])
		saveSelection(r, w, store, locs)
		return Selection{Locations: locs, Explicit: true}
	}

	if sess, err := store.Get(r, sessionName); err == nil {
		if raw, ok := sess.Values[sessionLocKey].([]string); ok {
			return Selection{Locations: raw}
		}
	}

	return Selection{Locations: DefaultSelection(ds)}
}

// DefaultSelection returns the first DefaultSelectionSize distinct
// locations in encounter order.
func DefaultSelection(ds *dataset.Dataset) []string {
	locs := ds.DistinctLocations()
	if len(locs) > DefaultSelectionSize {
		locs = locs[:DefaultSelectionSize]
	}
	return locs
}

// normalize drops empty values so `?loc=` parses as the empty selection.
func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func saveSelection(r *http.Request, w http.ResponseWriter, store sessions.Store, locs []string) {
	sess, err := store.Get(r, sessionName)
	if err != nil {
		return
	}
	sess.Values[sessionLocKey] = locs
	// Best effort: a failed cookie write only loses the remembered filter.
	_ = sess.Save(r, w)
}
