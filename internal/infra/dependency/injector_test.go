package dependency

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/barbershop/backend/config"
	"github.com/barbershop/backend/internal/infra/db"
	"github.com/barbershop/backend/internal/integration/email"
	"github.com/barbershop/backend/internal/integration/persistence/model"
)

func newTestInjector(t *testing.T, withRedis bool) *Injector {
	t.Helper()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database = config.DatabaseConfig{Driver: db.DriverSQLite, URL: ":memory:"}
	cfg.Report.Timezone = "UTC"
	cfg.RateLimit.MaxRequests = 100

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	var client *redis.Client
	if withRedis {
		mr := miniredis.RunT(t)
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
	}

	now := func() time.Time { return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC) }
	injector, err := NewInjector(cfg, database.DB(), client, email.NewMockEmailSender(), now)
	if err != nil {
		t.Fatalf("failed to wire: %v", err)
	}
	return injector
}

func do(t *testing.T, handler http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w.Code, decoded
}

func TestNewInjector_Routes(t *testing.T) {
	for _, withRedis := range []bool{true, false} {
		name := "without cache"
		if withRedis {
			name = "with cache"
		}

		t.Run(name, func(t *testing.T) {
			injector := newTestInjector(t, withRedis)
			engine := injector.Router.Setup("test")

			status, _ := do(t, engine, http.MethodPost, "/api/v1/expenses", `{"category":"supplies","amount":2500,"expense_date":"2025-03-05"}`)
			if status != http.StatusCreated {
				t.Fatalf("expected 201, got %d", status)
			}

			status, report := do(t, engine, http.MethodGet, "/api/v1/reports?range=month&month=2025-03", "")
			if status != http.StatusOK {
				t.Fatalf("expected 200, got %d", status)
			}
			metrics, _ := report["metrics"].(map[string]any)
			if metrics["total_expenses"] != "2500.00" {
				t.Errorf("expected total expenses 2500.00, got %v", metrics["total_expenses"])
			}

			status, health := do(t, engine, http.MethodGet, "/health", "")
			if status != http.StatusOK || health["database"] != "connected" {
				t.Errorf("unexpected health %d %v", status, health)
			}
			wantCache := "disabled"
			if withRedis {
				wantCache = "connected"
			}
			if health["cache"] != wantCache {
				t.Errorf("expected cache %s, got %v", wantCache, health["cache"])
			}
		})
	}
}

func TestNewInjector_UnknownRoute(t *testing.T) {
	engine := newTestInjector(t, false).Router.Setup("test")

	status, _ := do(t, engine, http.MethodGet, "/api/v1/transactions", "")
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}
