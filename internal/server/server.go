// Package server is the HTTP surface: the public plan-generation
// function endpoint and the authenticated application API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/barkoapp/barko/internal/logger"
	"github.com/barkoapp/barko/internal/profile"
	"github.com/barkoapp/barko/internal/progress"
	"github.com/barkoapp/barko/internal/store"
)

// Server holds the services the handlers dispatch to.
type Server struct {
	log       *logger.Logger
	profiles  *profile.Service
	tracker   *progress.Tracker
	rows      store.ProgressRepo
	jwtSecret string
}

// New creates a Server over the given services.
func New(log *logger.Logger, profiles *profile.Service, tracker *progress.Tracker, rows store.ProgressRepo, jwtSecret string) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		log:       log,
		profiles:  profiles,
		tracker:   tracker,
		rows:      rows,
		jwtSecret: jwtSecret,
	}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "barko"})
	})

	// Public function endpoint, kept at the path the web client calls.
	r.Post("/functions/generate-learning-plan", s.handleGeneratePlan)
	r.Options("/functions/generate-learning-plan", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(s.jwtSecret))

		r.Get("/api/profile", s.handleGetProfile)
		r.Patch("/api/profile", s.handlePatchProfile)
		r.Post("/api/onboarding", s.handleOnboarding)
		r.Get("/api/dashboard", s.handleDashboard)
		r.Post("/api/lessons/{id}/complete", s.handleLessonComplete)
		r.Post("/api/lessons/{id}/quiz", s.handleLessonQuiz)
	})

	return r
}
