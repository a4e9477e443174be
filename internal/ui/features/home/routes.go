package home

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/zest-labs/zest/internal/dataset"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, data dataset.Provider, sessionStore sessions.Store, previewLimit int) {
	handlers := NewHandlers(data, sessionStore, previewLimit)

	router.Get("/api/home", handlers.Overview)
	router.Get("/api/meta", handlers.Meta)
}
