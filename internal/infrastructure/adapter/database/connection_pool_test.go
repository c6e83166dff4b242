package database

import (
	"database/sql"
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f fakeStats) Stats() sql.DBStats { return f.stats }

func TestConnectionPoolMonitor(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Collect stores the latest sample", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()

		monitor := NewConnectionPoolMonitor(fakeStats{sql.DBStats{OpenConnections: 2, Idle: 1, InUse: 1, MaxOpenConnections: 10}}, mockLogger, mockTime)

		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())

		monitor.Collect()
		metrics := monitor.GetMetrics()

		assert.Equal(t, 2, metrics.OpenConnections)
		assert.Equal(t, 1, metrics.IdleConnections)
		assert.Equal(t, now, metrics.SampledAt)
	})

	t.Run("Warns near exhaustion", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Once()
		mockLogger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()

		monitor := NewConnectionPoolMonitor(fakeStats{sql.DBStats{InUse: 9, MaxOpenConnections: 10}}, mockLogger, mockTime)
		monitor.Collect()
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Maybe()

		monitor := NewConnectionPoolMonitor(fakeStats{}, mockLogger, mockTime)
		monitor.Start(time.Hour)
		monitor.Stop()
		monitor.Stop()
	})
}
