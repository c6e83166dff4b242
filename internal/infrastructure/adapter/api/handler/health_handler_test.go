package handler

import (
	"context"
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/database"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type stubStore struct {
	pingErr error
}

func (s stubStore) Ping(ctx context.Context) error { return s.pingErr }

func (s stubStore) PoolMetrics() database.ConnectionPoolMetrics {
	return database.ConnectionPoolMetrics{OpenConnections: 1, IdleConnections: 1}
}

func (s stubStore) Driver() string { return database.DriverSQLite }

func TestHealthHandler(t *testing.T) {
	t.Run("Root message", func(t *testing.T) {
		h := NewHealthHandler(stubStore{}, coremocks.NewMockLogger(t))
		w := performRequest(http.MethodGet, "/", "/", "", h.Root)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, ServiceMessage, decode[dto.MessageResponse](t, w).Message)
	})

	t.Run("Healthy store", func(t *testing.T) {
		h := NewHealthHandler(stubStore{}, coremocks.NewMockLogger(t))
		w := performRequest(http.MethodGet, "/health", "/health", "", h.Health)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.HealthResponse](t, w)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "sqlite", resp.Driver)
		assert.EqualValues(t, 1, resp.Pool["open_connections"])
	})

	t.Run("Unreachable store", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Health check failed", mock.Anything).Once()

		h := NewHealthHandler(stubStore{pingErr: domainerr.ErrDatabaseConnection}, mockLogger)
		w := performRequest(http.MethodGet, "/health", "/health", "", h.Health)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unavailable", decode[dto.HealthResponse](t, w).Status)
	})
}
