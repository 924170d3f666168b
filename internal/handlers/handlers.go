package handlers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"skc.dev/internal/contact"
	"skc.dev/internal/mailer"
	"skc.dev/internal/middleware"
	"skc.dev/internal/services"
)

// Dependencies are the collaborators the router wires into its handlers
type Dependencies struct {
	Logger    *zap.Logger
	Portfolio *services.PortfolioService
	Sessions  *contact.Store
	// MailEnabled is false when no mail provider is configured; contact
	// endpoints then answer 503.
	MailEnabled bool
	// Limiter throttles contact submissions. Nil disables throttling.
	Limiter middleware.Allower
	Static  fs.FS
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders)

	throttle := func(next http.Handler) http.Handler { return next }
	if deps.Limiter != nil {
		throttle = middleware.RateLimit(deps.Limiter, logger)
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(deps.Portfolio.Projects())
	animationHandler := NewAnimationHandler(deps.Portfolio)
	pageHandler := NewPageHandler(deps.Portfolio, deps.Sessions, deps.MailEnabled, logger)
	contactHandler := NewContactHandler(deps.Sessions, deps.MailEnabled, pageHandler, logger)

	r.Get("/", pageHandler.Index)
	r.With(throttle).Post("/contact", contactHandler.SubmitForm)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Content endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/portfolio", pageHandler.GetPortfolio)
		r.Get("/animations", animationHandler.ListAnimations)

		// Contact endpoints
		r.Route("/contact", func(r chi.Router) {
			r.Use(contactHandler.RequireMail)
			r.With(throttle).Post("/", contactHandler.Submit)
			r.Post("/sessions", contactHandler.CreateSession)
			r.Get("/sessions/{id}", contactHandler.GetSession)
			r.Patch("/sessions/{id}", contactHandler.EditSession)
			r.With(throttle).Post("/sessions/{id}/submit", contactHandler.SubmitSession)
			r.Delete("/sessions/{id}", contactHandler.DeleteSession)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	if deps.Static != nil {
		fileServer := http.FileServer(http.FS(deps.Static))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusFor maps contact errors to HTTP statuses
func statusFor(err error) int {
	var verr *contact.ValidationError
	var derr *mailer.DeliveryError
	switch {
	case errors.As(err, &verr), errors.Is(err, contact.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, contact.ErrSessionNotFound), errors.Is(err, services.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, contact.ErrSubmitting), errors.Is(err, contact.ErrSubmitted):
		return http.StatusConflict
	case errors.As(err, &derr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
