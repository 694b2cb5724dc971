package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant/src/app/server"
	"restaurant/src/core/domain"
	"restaurant/src/infra/config"
	"restaurant/src/infra/db/dbtest"
	"restaurant/src/infra/logger"
	"restaurant/src/infra/repo"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            3000,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:   config.LogConfig{Level: "info", Format: "plain"},
		Admin: config.AdminConfig{Username: "admin", Password: "admin123"},
	}
}

func setupServer(t *testing.T, cfg *config.Config) (*server.Server, pgxmock.PgxConnIface, *dbtest.LogBuffer) {
	t.Helper()

	log, buf := dbtest.NewLogger()
	pg, pool := dbtest.New(t, dbtest.Config{Logger: log})
	t.Cleanup(func() {
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	srv := server.New(cfg, log, repo.NewPostgresRepository(pg, logger.Discard()))
	return srv, pool.Mock(), buf
}

func do(t *testing.T, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func tag(s string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{}).AddCommandTag(pgconn.NewCommandTag(s))
}

// =============================================================================
// Route Tests
// =============================================================================

func TestHealth(t *testing.T) {
	srv, _, _ := setupServer(t, testConfig())

	w := do(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
	assert.Contains(t, decode(t, w), "uptime")

	w = do(t, srv, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	db := body["components"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
	assert.Contains(t, db, "pool")
}

func TestDetailedHealth_DatabaseDown(t *testing.T) {
	pg, pool := dbtest.New(t, dbtest.Config{})
	pool.SetPingError(errors.New("connection refused"))
	srv := server.New(testConfig(), logger.Discard(), repo.NewPostgresRepository(pg, logger.Discard()))

	w := do(t, srv, http.MethodGet, "/health/detailed", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decode(t, w)
	assert.Equal(t, "degraded", body["status"])
	db := body["components"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "unhealthy", db["status"])
	assert.Equal(t, "connection refused", db["message"])

	pool.Close()
	w = do(t, srv, http.MethodGet, "/api/tables", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "UNAVAILABLE", decode(t, w)["error"].(map[string]any)["code"])
}

func TestGetMenu(t *testing.T) {
	srv, mock, buf := setupServer(t, testConfig())

	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "price", "ingredients", "available"}).
			AddRow(int32(1), "Soup", 4.5, nil, true).
			AddCommandTag(pgconn.NewCommandTag("SELECT 1")))

	w := do(t, srv, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)

	items := decode(t, w)["data"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Soup", item["name"])
	assert.Equal(t, 4.5, item["price"])
	assert.Equal(t, []any{}, item["ingredients"])

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	requestID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)
	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(l, "executed query component=db") {
			line = l
		}
	}
	require.NotEmpty(t, line, "statement logged")
	assert.Contains(t, line, "request_id="+requestID)
}

func TestCreateTable(t *testing.T) {
	srv, mock, _ := setupServer(t, testConfig())

	mock.ExpectQuery("INSERT INTO tables").
		WithArgs(pgxmock.AnyArg(), "12", 4, "terrace", domain.TableAvailable).
		WillReturnRows(tag("INSERT 0 1"))

	w := do(t, srv, http.MethodPost, "/api/tables", `{"number":"12","seats":4,"location":"terrace"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode(t, w)["data"].(map[string]any)["id"].(string)
	assert.Len(t, id, 36)
}

func TestCreateTable_Invalid(t *testing.T) {
	srv, _, _ := setupServer(t, testConfig())

	w := do(t, srv, http.MethodPost, "/api/tables", `{"number":"12","seats":0,"location":"terrace"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", decode(t, w)["error"].(map[string]any)["code"])
}

func TestCreateStaff_Conflict(t *testing.T) {
	srv, mock, _ := setupServer(t, testConfig())

	mock.ExpectQuery("INSERT INTO staff").
		WithArgs(pgxmock.AnyArg(), "Ana", "ana@example.com", "555", "09:00", "17:00", []string{"mon"}, "ana", "pw", domain.StaffActive).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (username)=(ana) already exists."})

	body := `{"name":"Ana","email":"ana@example.com","phone":"555","shift":{"start":"09:00","end":"17:00","days":["mon"]},"username":"ana","password":"pw"}`
	w := do(t, srv, http.MethodPost, "/api/staff", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrder(t *testing.T) {
	srv, mock, _ := setupServer(t, testConfig())

	mock.ExpectQuery("BEGIN").WillReturnRows(tag("BEGIN"))
	items := []domain.OrderItem{{MenuItemID: 1, Name: "Soup", Quantity: 2, Price: 4.5}}
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(pgxmock.AnyArg(), "t1", items, domain.OrderPending, 9.9, 0.9, 9.0, nil, nil, nil).
		WillReturnRows(tag("INSERT 0 1"))
	mock.ExpectQuery("UPDATE tables SET status").
		WithArgs(domain.TableOccupied, "t1").
		WillReturnRows(tag("UPDATE 1"))
	mock.ExpectQuery("COMMIT").WillReturnRows(tag("COMMIT"))

	body := `{"tableId":"t1","items":[{"menuItemId":1,"name":"Soup","quantity":2,"price":4.5}],"total":9.9,"tax":0.9,"subtotal":9}`
	w := do(t, srv, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expect   func(m pgxmock.PgxConnIface)
		wantCode int
	}{
		{
			name: "updated",
			body: `{"status":"ready"}`,
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("UPDATE orders SET status").
					WithArgs(domain.OrderReady, "o1").
					WillReturnRows(tag("UPDATE 1"))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown order",
			body: `{"status":"ready"}`,
			expect: func(m pgxmock.PgxConnIface) {
				m.ExpectQuery("UPDATE orders SET status").
					WithArgs(domain.OrderReady, "o1").
					WillReturnRows(tag("UPDATE 0"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "unknown status",
			body:     `{"status":"eaten"}`,
			expect:   func(pgxmock.PgxConnIface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing body",
			body:     `{}`,
			expect:   func(pgxmock.PgxConnIface) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mock, _ := setupServer(t, testConfig())
			tt.expect(mock)

			w := do(t, srv, http.MethodPatch, "/api/orders/o1/status", tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"data":{"success":true}}`, w.Body.String())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		srv, _, buf := setupServer(t, testConfig())

		w := do(t, srv, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"id":"admin","name":"Admin","role":"admin"}}`, w.Body.String())
		assert.NotContains(t, buf.String(), "admin123", "credentials never logged")
		assert.Contains(t, buf.String(), "[redacted]")
	})

	t.Run("waiter", func(t *testing.T) {
		srv, mock, _ := setupServer(t, testConfig())
		mock.ExpectQuery("FROM staff WHERE username").
			WithArgs("ana", "pw", domain.StaffActive).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "status"}).AddRow("s1", "Ana", "active"))

		w := do(t, srv, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"pw"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"id":"s1","name":"Ana","role":"waiter"}}`, w.Body.String())
	})

	t.Run("invalid", func(t *testing.T) {
		srv, mock, _ := setupServer(t, testConfig())
		mock.ExpectQuery("FROM staff WHERE username").
			WithArgs("ana", "nope", domain.StaffActive).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "status"}))

		w := do(t, srv, http.MethodPost, "/api/auth/login", `{"username":"ana","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestStorageFailureIsInternalError(t *testing.T) {
	srv, mock, buf := setupServer(t, testConfig())
	mock.ExpectQuery("FROM waiter_calls").WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection"})

	w := do(t, srv, http.MethodGet, "/api/waiter-calls", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w)["error"].(map[string]any)["code"])
	assert.Contains(t, buf.String(), "request failed")
}

func TestPreflight(t *testing.T) {
	srv, _, _ := setupServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", bytes.NewReader(nil))
	req.Header.Set("Origin", "https://pos.example.com")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://pos.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFound(t *testing.T) {
	srv, _, _ := setupServer(t, testConfig())

	w := do(t, srv, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// Lifecycle
// =============================================================================

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRun_GracefulShutdown(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Port = freePort(t)
	srv, _, buf := setupServer(t, cfg)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run() }()

	require.NoError(t, srv.WaitForReady(2*time.Second))
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, buf.String(), "server stopped gracefully")
}
