package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-api/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubDatabase answers health checks without a real pool
type stubDatabase struct {
	status string
	closed bool
}

func (s *stubDatabase) DB() *sql.DB { return nil }

func (s *stubDatabase) Health(ctx context.Context) map[string]string {
	return map[string]string{"status": s.status}
}

func (s *stubDatabase) Close() error {
	s.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Env: "development"},
		RateLimit: config.RateLimitConfig{
			Enabled:  true,
			Requests: 1,
			Window:   time.Minute,
		},
	}
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	t.Run("UpIsOK", func(t *testing.T) {
		srv := NewServer(testConfig(), zap.NewNop(), &stubDatabase{status: "up"}, nil)

		w := get(t, srv, "/health")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.NotContains(t, body, "redis")
	})

	t.Run("DatabaseDownIsUnavailable", func(t *testing.T) {
		srv := NewServer(testConfig(), zap.NewNop(), &stubDatabase{status: "down"}, nil)

		w := get(t, srv, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("ReportsRedis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		srv := NewServer(testConfig(), zap.NewNop(), &stubDatabase{status: "up"}, client)
		defer srv.Close()

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(get(t, srv, "/health").Body.Bytes(), &body))
		assert.Equal(t, "up", body["redis"])
	})
}

func TestRateLimitAppliesToAPIOnly(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	srv := NewServer(testConfig(), zap.NewNop(), &stubDatabase{status: "up"}, client)
	defer srv.Close()

	// A malformed id is rejected before any store access
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/categories/abc").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, srv, "/api/products/abc").Code)

	assert.Equal(t, http.StatusOK, get(t, srv, "/health").Code)
	assert.Equal(t, http.StatusOK, get(t, srv, "/health").Code)
}

func TestServerSettings(t *testing.T) {
	db := &stubDatabase{status: "up"}
	srv := NewServer(testConfig(), zap.NewNop(), db, nil)

	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 10*time.Second, srv.ReadTimeout)
	assert.Equal(t, 30*time.Second, srv.WriteTimeout)
	assert.Equal(t, time.Minute, srv.IdleTimeout)

	require.NoError(t, srv.Close())
	assert.True(t, db.closed)
}
