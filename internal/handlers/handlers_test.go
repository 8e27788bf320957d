package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/highlight"
	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
	"portfolio.dev/internal/session"
)

type testServer struct {
	handler http.Handler
	cookie  *http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, catalog.Default())
}

func newTestServerWith(t *testing.T, store *catalog.Store) *testServer {
	t.Helper()
	hl := highlight.New("github", nil)
	sessions := session.NewStore(16, time.Hour, func() *page.Page {
		return page.New(store, page.Options{Title: "Test", Highlighter: hl})
	})

	return &testServer{handler: SetupRoutes(Deps{
		Config:      config.DefaultConfig(),
		Catalog:     store,
		Sessions:    sessions,
		Highlighter: hl,
	})}
}

// do sends a request, carrying the session cookie between calls
func (s *testServer) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			s.cookie = c
		}
	}
	return w
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestProjectsAPI(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list models.ProjectList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Projects, 4)

	w = s.do(t, http.MethodGet, "/api/projects/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, models.CategoryWeb, p.Category)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/projects/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/projects/abc", nil).Code)

	w = s.do(t, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var skills models.SkillList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.Len(t, skills.Skills, 13)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `id="projects-grid"`)
	require.NotNil(t, s.cookie)
}

func TestFilterFlow(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/", nil)

	w := s.do(t, http.MethodPost, "/filter/python", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<section id="projects"`))
	assert.Equal(t, 2, strings.Count(body, "display: flex"))
	assert.Equal(t, 2, strings.Count(body, "display: none"))

	// State survives into the full page
	full := s.do(t, http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, full, `class="filter-btn active" type="button" data-filter="python"`)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/filter/cobol", nil).Code)
}

func TestFilterEscapedCategories(t *testing.T) {
	store, err := catalog.NewStore([]models.Project{
		{ID: 1, Title: "Pipelines", Category: "ci/cd"},
		{ID: 2, Title: "Notebooks", Category: "data science"},
		{ID: 3, Title: "Discounts", Category: "100%"},
	}, nil)
	require.NoError(t, err)

	s := newTestServerWith(t, store)
	index := s.do(t, http.MethodGet, "/", nil).Body.String()

	for _, tc := range []struct{ category, target string }{
		{"ci/cd", "/filter/ci%2Fcd"},
		{"data science", "/filter/data%20science"},
		{"100%", "/filter/100%25"},
	} {
		t.Run(tc.category, func(t *testing.T) {
			assert.Contains(t, index, `hx-post="`+tc.target+`"`)

			w := s.do(t, http.MethodPost, tc.target, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, 1, strings.Count(w.Body.String(), "display: flex"))
		})
	}
}

func TestModalFlow(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/", nil)

	w := s.do(t, http.MethodGet, "/projects/2/details", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<div id="project-modal"`))
	assert.Contains(t, body, "display: block")
	assert.Contains(t, body, "Flask web application")
	assert.Contains(t, body, `data-highlighted="yes"`)

	w = s.do(t, http.MethodPost, "/modal/click?target=modal-body", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "display: block")

	w = s.do(t, http.MethodPost, "/modal/click?target=project-modal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "display: none")

	s.do(t, http.MethodGet, "/projects/1/details", nil)
	w = s.do(t, http.MethodPost, "/modal/close", nil)
	assert.Contains(t, w.Body.String(), "display: none")

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/projects/99/details", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/projects/x/details", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/modal/click?target=nope", nil).Code)
}

func TestContactDoesNotTouchPageState(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/", nil)
	s.do(t, http.MethodPost, "/filter/web", nil)

	w := s.do(t, http.MethodPost, "/contact", url.Values{
		"name":    {"Ann"},
		"email":   {"ann@example.com"},
		"message": {"Hello there"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thank you, Ann!")

	full := s.do(t, http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, full, `class="filter-btn active" type="button" data-filter="web"`)
}

func TestContactMissingFields(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/contact", url.Values{"name": {"Ann"}, "email": {" "}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email, message")
}

func TestStylesheets(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/static/style.css", "/static/highlight.css"} {
		w := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/css", path)
		assert.NotEmpty(t, w.Body.String(), path)
	}
}
