package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValidIDs(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("expected valid id preserved, got %q", got)
	}
}

func TestSanitizeRequestIDReplacesInvalidIDs(t *testing.T) {
	for _, bad := range []string{"", "has space", "bad/slash", "x" + string(make([]byte, 100))} {
		got := SanitizeRequestID(bad)
		if got == bad || got == "" {
			t.Fatalf("expected replacement for %q, got %q", bad, got)
		}
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	if NewRequestID() == NewRequestID() {
		t.Fatal("expected distinct request IDs")
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ClientIP(req); got != req.RemoteAddr {
		t.Fatalf("expected remote addr, got %q", got)
	}
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}
}
