// Package api exposes the workout service over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/auth"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/domain/workout"
	"github.com/D-sah-art/Advanced-Fitness-Tracker-API/pkg/infrastructure/sentry"
)

// Handler serves the /api/workouts routes.
type Handler struct {
	Auth     *auth.Authenticator
	Workouts *workout.Service
	Logger   *slog.Logger
}

// Options tunes the router.
type Options struct {
	CORSAllowedOrigins []string
}

// NewRouter wires middleware and routes. Everything under /api/workouts
// requires a valid x-api-key header.
func NewRouter(h *Handler, opts Options) http.Handler {
	if h.Logger == nil {
		h.Logger = slog.Default()
	}
	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(sentry.Middleware())
	r.Use(h.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", auth.HeaderName},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			h.Logger.Warn("healthz write failed", "error", err)
		}
	})

	r.Route("/api/workouts", func(r chi.Router) {
		r.Use(h.authenticate)
		r.Post("/", h.createWorkout)
		r.Get("/", h.listWorkouts)
		r.Put("/{id}", h.updateWorkout)
		r.Delete("/{id}", h.deleteWorkout)
	})

	return r
}
