// Package app wires configuration into the catalog, renderer and page factory.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/handlers"
	"portfolio.dev/internal/highlight"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/render"
	"portfolio.dev/internal/session"
)

// App is the assembled portfolio
type App struct {
	Config      *config.Config
	Catalog     *catalog.Store
	Highlighter *highlight.Highlighter
	Renderer    *render.Renderer
}

// New loads the catalog named by cfg and builds the shared services
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return &App{
		Config:      cfg,
		Catalog:     store,
		Highlighter: highlight.New(cfg.Highlight.Style, logger),
		Renderer:    render.New(render.DefaultCategories),
	}, nil
}

// PageOptions returns the options every visitor page is built with
func (a *App) PageOptions() page.Options {
	filters := make([]models.Category, 0, len(a.Config.Site.Filters))
	for _, f := range a.Config.Site.Filters {
		filters = append(filters, models.Category(f))
	}

	return page.Options{
		Title:       a.Config.Site.Title,
		Owner:       a.Config.Site.Owner,
		Tagline:     a.Config.Site.Tagline,
		Filters:     filters,
		Renderer:    a.Renderer,
		Highlighter: a.Highlighter,
		Scheduler:   page.Immediate{},
		HideDelay:   a.Config.Transitions.HideDelay,
		ShowDelay:   a.Config.Transitions.ShowDelay,
	}
}

// NewPage builds a fresh page in its initial state
func (a *App) NewPage() *page.Page {
	return page.New(a.Catalog, a.PageOptions())
}

// Handler returns the HTTP routes backed by a new session store
func (a *App) Handler() http.Handler {
	sessions := session.NewStore(a.Config.Session.Size, a.Config.Session.TTL, a.NewPage)
	return handlers.SetupRoutes(handlers.Deps{
		Config:      a.Config,
		Catalog:     a.Catalog,
		Sessions:    sessions,
		Highlighter: a.Highlighter,
	})
}
