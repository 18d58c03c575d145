package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("has spaces"); got == "has spaces" || got == "" {
		t.Fatalf("expected regenerated id, got %q", got)
	}
	if got := SanitizeRequestID(""); got == "" {
		t.Fatal("expected generated id for empty input")
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	if a == "" || a == b {
		t.Fatalf("expected distinct ids, got %q and %q", a, b)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/leagues", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %s", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %s", got)
	}

	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %s", got)
	}
}
