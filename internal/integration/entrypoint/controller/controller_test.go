package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"RPT-010003", http.StatusBadRequest},
		{"SVC-010002", http.StatusBadRequest},
		{"EXP-010001", http.StatusBadRequest},
		{"CUS-010002", http.StatusConflict},
		{"CUS-010001", http.StatusNotFound},
		{"EMAIL-010001", http.StatusInternalServerError},
		{"RPT-990001", http.StatusInternalServerError},
		{"EMAIL-020002", http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := statusForCode(tt.code); got != tt.want {
				t.Errorf("statusForCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func serveError(err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/", func(c *gin.Context) { respondError(c, err) })
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespondError(t *testing.T) {
	t.Run("wrapped domain error keeps its code", func(t *testing.T) {
		err := fmt.Errorf("recording: %w", domainerror.NewServiceError(
			domainerror.ErrCodeInvalidServiceAmount,
			domainerror.ErrInvalidServiceAmount.Error(),
			domainerror.ErrInvalidServiceAmount,
		))

		w, body := serveError(err)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if body.Code != string(domainerror.ErrCodeInvalidServiceAmount) {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidServiceAmount, body.Code)
		}
	})

	t.Run("unknown errors are hidden", func(t *testing.T) {
		w, body := serveError(errors.New("connection reset by peer"))
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		if body.Code != string(domainerror.ErrCodeInternalFailure) {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInternalFailure, body.Code)
		}
		if body.Error != "An internal error occurred" {
			t.Errorf("expected generic message, got %q", body.Error)
		}
	})
}

func TestParseRecordDate(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	t.Run("empty means unset", func(t *testing.T) {
		got, ok := parseRecordDate("", lagos)
		if !ok || got != nil {
			t.Errorf("expected nil and ok, got %v %v", got, ok)
		}
	})

	t.Run("date is start of day in location", func(t *testing.T) {
		got, ok := parseRecordDate("2025-03-10", lagos)
		if !ok {
			t.Fatal("expected date to parse")
		}
		want := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got.UTC())
		}
	})

	t.Run("rfc3339 is used as given", func(t *testing.T) {
		got, ok := parseRecordDate("2025-03-10T08:30:00Z", lagos)
		if !ok || !got.Equal(time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)) {
			t.Errorf("unexpected result %v %v", got, ok)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, ok := parseRecordDate("10/03/2025", lagos); ok {
			t.Error("expected parse failure")
		}
	})
}

func TestHealthController_Check(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		db         func() bool
		cache      func() bool
		wantStatus string
		wantDB     string
		wantCache  string
	}{
		{"all up", func() bool { return true }, func() bool { return true }, "ok", "connected", "connected"},
		{"cache disabled", func() bool { return true }, nil, "ok", "connected", "disabled"},
		{"cache down", func() bool { return true }, func() bool { return false }, "ok", "connected", "disconnected"},
		{"database down", func() bool { return false }, nil, "degraded", "disconnected", "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthController(tt.db, tt.cache, now).Check)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			var body HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Status != tt.wantStatus || body.Database != tt.wantDB || body.Cache != tt.wantCache {
				t.Errorf("unexpected health %+v", body)
			}
			if body.Timestamp != "2025-03-20T12:00:00Z" {
				t.Errorf("unexpected timestamp %s", body.Timestamp)
			}
		})
	}
}
