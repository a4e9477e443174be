// Package router sets up HTTP routes for the dashboard server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/zest-labs/zest/internal/dataset"
	bivariateFeature "github.com/zest-labs/zest/internal/ui/features/bivariate"
	homeFeature "github.com/zest-labs/zest/internal/ui/features/home"
	multivariateFeature "github.com/zest-labs/zest/internal/ui/features/multivariate"
	univariateFeature "github.com/zest-labs/zest/internal/ui/features/univariate"
	"github.com/zest-labs/zest/internal/ui/notifier"
	"github.com/zest-labs/zest/internal/ui/resources"
)

// SetupRoutes configures all routes for the dashboard server.
func SetupRoutes(
	router chi.Router,
	data dataset.Provider,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	previewLimit int,
) {
	// Shell and static assets
	router.Get("/", resources.Index)
	router.Handle("/static/*", resources.Handler())

	// Dataset-reload push channel
	setupUpdates(router, notify)

	// Feature routes
	homeFeature.SetupRoutes(router, data, sessionStore, previewLimit)
	univariateFeature.SetupRoutes(router, data, sessionStore)
	bivariateFeature.SetupRoutes(router, data, sessionStore)
	multivariateFeature.SetupRoutes(router, data, sessionStore)
}

// setupUpdates streams a reload instruction to the shell whenever the
// dataset store swaps in a new generation.
func setupUpdates(router chi.Router, notify *notifier.Notifier) {
	router.Get("/updates", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)

		updates := notify.Subscribe()
		defer notify.Unsubscribe(updates)

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case <-updates:
				// The shell re-fetches everything from the new generation.
				if err := sse.ExecuteScript("window.location.reload()"); err != nil {
					return
				}
			}
		}
	})
}
