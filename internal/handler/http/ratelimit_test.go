package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/quiz/results", nil)
		r.RemoteAddr = "203.0.113.5:1000"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/quiz/results", nil)
		r.RemoteAddr = "203.0.113.5:1000"
		handler.ServeHTTP(last, r)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Errorf("third request: status = %d, want 429", last.Code)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header on 429")
	}
}

func TestRateLimiter_SeparateBucketsPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/", nil)
	r1.RemoteAddr = "203.0.113.5:1000"
	handler.ServeHTTP(first, r1)

	// Exhaust the first client's bucket.
	blocked := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.RemoteAddr = "203.0.113.5:2000"
	handler.ServeHTTP(blocked, r2)

	// A different client IP still gets through.
	other := httptest.NewRecorder()
	r3 := httptest.NewRequest(http.MethodGet, "/", nil)
	r3.RemoteAddr = "198.51.100.7:1000"
	handler.ServeHTTP(other, r3)

	if first.Code != http.StatusOK {
		t.Errorf("first request: status = %d, want 200", first.Code)
	}
	if blocked.Code != http.StatusTooManyRequests {
		t.Errorf("same-IP second request: status = %d, want 429", blocked.Code)
	}
	if other.Code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", other.Code)
	}
}
