// Package session keeps one page per visitor so filter and modal state survive between requests.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"portfolio.dev/internal/page"
)

// CookieName is the cookie that carries the session id
const CookieName = "portfolio_session"

type ctxKey struct{}

// Factory builds a fresh page for a new visitor
type Factory func() *page.Page

// Store holds recently used pages, evicting the oldest past size or ttl
type Store struct {
	pages   *expirable.LRU[string, *page.Page]
	factory Factory
	ttl     time.Duration
}

// NewStore creates a session store
func NewStore(size int, ttl time.Duration, factory Factory) *Store {
	return &Store{
		pages:   expirable.NewLRU[string, *page.Page](size, nil, ttl),
		factory: factory,
		ttl:     ttl,
	}
}

// Get returns the page for id, creating one under a new id when id is unknown.
// The returned id is the one the caller should hand back to the visitor.
// A hit restarts the ttl, matching the cookie Middleware refreshes.
func (s *Store) Get(id string) (string, *page.Page) {
	if id != "" {
		if p, ok := s.pages.Get(id); ok {
			s.pages.Add(id, p)
			return id, p
		}
	}
	id = uuid.NewString()
	p := s.factory()
	s.pages.Add(id, p)
	return id, p
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	return s.pages.Len()
}

// Middleware attaches the visitor's page to the request context and refreshes the cookie
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var current string
		if c, err := r.Cookie(CookieName); err == nil {
			current = c.Value
		}

		id, p := s.Get(current)
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(s.ttl.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(WithPage(r.Context(), p)))
	})
}

// WithPage returns a context carrying p
func WithPage(ctx context.Context, p *page.Page) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the page stored by Middleware, or nil
func FromContext(ctx context.Context) *page.Page {
	p, _ := ctx.Value(ctxKey{}).(*page.Page)
	return p
}
