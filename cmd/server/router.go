package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mnemo-app/mnemo-api/internal/api"
	apiMiddleware "github.com/mnemo-app/mnemo-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	setHandler := api.NewSetHandler(app.setService)
	reviewHandler := api.NewReviewHandler(app.reviewService)

	r.Route("/api", func(r chi.Router) {
		// Flashcard set endpoints
		r.Post("/sets", setHandler.CreateSet)
		r.Get("/sets", setHandler.GetSet)
		r.Post("/sets/move", setHandler.MoveSet)

		// Review query endpoints
		r.Get("/reviews/today", reviewHandler.DueToday)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
