package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

func newTestRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(2, time.Minute, clock.Now)
	r := newTestRouter(rl)

	for i := 0; i < 2; i++ {
		if w := post(r); w.Code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, w.Code)
		}
	}

	w := post(r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	clock.t = clock.t.Add(61 * time.Second)
	if w := post(r); w.Code != http.StatusCreated {
		t.Errorf("expected a new window to allow the request, got %d", w.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(1, time.Minute, clock.Now)
	rl.allow("a")

	clock.t = clock.t.Add(2 * time.Minute)
	rl.Cleanup()

	if len(rl.entries) != 0 {
		t.Errorf("expected expired entries to be removed, got %d", len(rl.entries))
	}
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(0, 0, time.Now)
	if rl.maxRequests != defaultMaxRequests || rl.windowDuration != defaultWindowDuration {
		t.Errorf("unexpected defaults: %d per %s", rl.maxRequests, rl.windowDuration)
	}
}
