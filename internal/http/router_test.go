package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-matchup-service/internal/app/matchups"
	"nba-matchup-service/internal/http/handlers"
	"nba-matchup-service/internal/store"
)

func routerUnderTest() http.Handler {
	ms := store.NewMemoryStore()
	ms.SetDatasets([]matchups.Dataset{{ID: "2025-01-15-LAL-BOS"}})
	h := handlers.NewHandler(ms, nil, nil, nil, nil)
	return NewRouter(h, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := routerUnderTest()

	cases := map[string]int{
		"/health":                      http.StatusOK,
		"/ready":                       http.StatusOK,
		"/matchups":                    http.StatusOK,
		"/matchups/today":              http.StatusOK,
		"/matchups/2025-01-15-LAL-BOS": http.StatusOK,
		"/matchups/missing-matchup":    http.StatusNotFound, // known route with missing dataset
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := routerUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterAdminRouteRegisteredWhenConfigured(t *testing.T) {
	ms := store.NewMemoryStore()
	h := handlers.NewHandler(ms, nil, nil, nil, nil)
	admin := handlers.NewAdminHandler(nil, "secret", nil)
	router := NewRouter(h, admin)

	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Route exists; missing bearer token yields 401 rather than 404.
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from admin route, got %d", rr.Code)
	}
}
