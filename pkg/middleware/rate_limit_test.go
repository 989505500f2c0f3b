package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nexusplater/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestIPRateLimiterAllow(t *testing.T) {
	limiter := NewIPRateLimiter(2, time.Minute, testLogger())
	defer limiter.Stop()

	if !limiter.Allow("1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if !limiter.Allow("1.2.3.4") {
		t.Fatal("second request should be allowed")
	}
	if limiter.Allow("1.2.3.4") {
		t.Fatal("third request should be rejected")
	}
	if !limiter.Allow("5.6.7.8") {
		t.Fatal("different address should be unaffected")
	}
	if !limiter.Allow("") {
		t.Fatal("empty address must not be throttled")
	}
}

func TestSubmissionRateLimitScope(t *testing.T) {
	limiter := NewIPRateLimiter(1, time.Minute, testLogger())
	defer limiter.Stop()

	handler := SubmissionRateLimit(limiter, "/submitInquiry")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	post := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(""))
		req.RemoteAddr = "9.9.9.9:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := post("/submitInquiry"); rec.Code != http.StatusOK {
		t.Fatalf("first submission: got %d, want 200", rec.Code)
	}
	if rec := post("/submitInquiry"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second submission: got %d, want 429", rec.Code)
	}

	// Other routes are never throttled.
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /home: got %d, want 200", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "10.0.0.1:5555",
			want:       "10.0.0.1",
		},
		{
			name:       "single forwarded entry",
			remoteAddr: "10.0.0.1:5555",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "forwarded chain takes first",
			remoteAddr: "10.0.0.1:5555",
			forwarded:  "203.0.113.7, 198.51.100.2",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
