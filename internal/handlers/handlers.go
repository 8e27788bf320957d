package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"portfolio.dev/internal/assets"
	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/highlight"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/session"
)

// Deps are the services the routes are built from
type Deps struct {
	Config      *config.Config
	Catalog     *catalog.Store
	Sessions    *session.Store
	Highlighter *highlight.Highlighter
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)

	// Initialize handlers
	pageHandler := NewPageHandler(d.Catalog)
	projectHandler := NewProjectHandler(d.Catalog)
	contactHandler := NewContactHandler()

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.Config.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/skills", projectHandler.ListSkills)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	r.Get("/static/style.css", serveCSS(func(w io.Writer) error {
		_, err := w.Write(assets.StyleCSS)
		return err
	}))
	r.Get("/static/highlight.css", serveCSS(d.Highlighter.CSS))

	// Interactive page, one per visitor
	r.Group(func(r chi.Router) {
		r.Use(d.Sessions.Middleware)

		r.Get("/", pageHandler.Index)
		r.Post("/filter/{value}", pageHandler.Filter)
		r.Get("/projects/{id}/details", pageHandler.Details)
		r.Post("/modal/close", pageHandler.CloseModal)
		r.Post("/modal/click", pageHandler.ClickModal)
	})

	// The contact form never touches page state
	r.Post("/contact", contactHandler.Submit)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondHTML renders into a buffer first so a render failure still yields a clean 500
func respondHTML(w http.ResponseWriter, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("rendering HTML", "error", err)
		respondError(w, http.StatusInternalServerError, "Render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("writing HTML response", "error", err)
	}
}

func serveCSS(write func(io.Writer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := write(&buf); err != nil {
			slog.Error("writing stylesheet", "error", err)
			respondError(w, http.StatusInternalServerError, "Stylesheet unavailable")
			return
		}
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		buf.WriteTo(w)
	}
}
