package univariate

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/dataset"
)

// SetupRoutes configures routes for the univariate feature.
func SetupRoutes(router chi.Router, data dataset.Provider, sessionStore sessions.Store) {
	handlers := NewHandlers(data, sessionStore)

	router.Get("/api/univariate", handlers.Analyze)
}
