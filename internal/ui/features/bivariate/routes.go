package bivariate

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/dataset"
)

// SetupRoutes configures routes for the bivariate feature.
func SetupRoutes(router chi.Router, data dataset.Provider, sessionStore sessions.Store) {
	handlers := NewHandlers(data, sessionStore)

	router.Get("/api/bivariate", handlers.Analyze)
}
