package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-matchup-service/internal/testutil"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) RefreshNow(ctx context.Context) error {
	_ = ctx
	s.calls++
	return s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresPost(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)

	rr := testutil.Serve(http.HandlerFunc(h.RefreshMatchups), http.MethodGet, "/admin/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestAdminRefreshRejectsMissingToken(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest(""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	if ref.calls != 0 {
		t.Fatalf("expected no refresh on unauthorized request")
	}
}

func TestAdminRefreshRejectsWrongToken(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest("wrong"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshRejectsWhenNoTokenConfigured(t *testing.T) {
	// Empty configured token disables the endpoint entirely.
	h := NewAdminHandler(&stubRefresher{}, "", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest("anything"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshRunsCycle(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if ref.calls != 1 {
		t.Fatalf("expected one refresh call, got %d", ref.calls)
	}

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" || resp["date"] == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAdminRefreshErrorReturnsBadGateway(t *testing.T) {
	ref := &stubRefresher{err: errors.New("slate fetch failed")}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminRefreshWithoutRefresherReturnsServiceUnavailable(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshMatchups), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestAdminTokenFromEnv(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")
	if got := AdminTokenFromEnv(); got != "from-env" {
		t.Fatalf("expected token from env, got %q", got)
	}
}
