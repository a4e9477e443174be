package multivariate

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/dataset"
)

// SetupRoutes configures routes for the multivariate feature.
func SetupRoutes(router chi.Router, data dataset.Provider, sessionStore sessions.Store) {
	handlers := NewHandlers(data, sessionStore)

	router.Get("/api/multivariate", handlers.Analyze)
}
