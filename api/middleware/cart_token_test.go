package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestCartTokenMintsWhenMissing(t *testing.T) {
	var captured string
	handler := CartToken()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("expected minted uuid in context got %q", captured)
	}
	if echoed := resp.Header().Get("X-Cart-Token"); echoed != captured {
		t.Fatalf("expected echoed token %q got %q", captured, echoed)
	}
}

func TestCartTokenPreservesValidToken(t *testing.T) {
	token := uuid.NewString()

	var captured string
	handler := CartToken()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-Token", token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if captured != token {
		t.Fatalf("expected token %q preserved got %q", token, captured)
	}
	if echoed := resp.Header().Get("X-Cart-Token"); echoed != token {
		t.Fatalf("expected echoed token %q got %q", token, echoed)
	}
}

func TestCartTokenReplacesMalformedToken(t *testing.T) {
	var captured string
	handler := CartToken()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = CartIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Cart-Token", "not-a-uuid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if captured == "not-a-uuid" {
		t.Fatal("expected malformed token to be replaced")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("expected minted uuid got %q", captured)
	}
}
