package database

import (
	"context"
	"errors"
	"testing"
	"time"

	applogger "github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestDatabaseLoggerTrace(t *testing.T) {
	begin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	insert := func() (string, int64) {
		return "INSERT INTO `purchases` (`user_id`,`amount`) VALUES (1,10)", 1
	}

	t.Run("Regular query logs at debug with request id", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTime.EXPECT().Since(begin).Return(5 * time.Millisecond).Once()
		mockLogger.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["type"] == "INSERT" && fields["table"] == "purchases" && fields["request_id"] == "req-42"
		})).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "info", 200*time.Millisecond)
		ctx := applogger.ContextWithRequestID(context.Background(), "req-42")
		l.Trace(ctx, begin, insert, nil)
	})

	t.Run("Slow query warns", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTime.EXPECT().Since(begin).Return(time.Second).Once()
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "warn", 200*time.Millisecond)
		l.Trace(context.Background(), begin, insert, nil)
	})

	t.Run("Errors are logged but record not found is not", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockTime.EXPECT().Since(begin).Return(time.Millisecond).Times(2)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "disk I/O error"
		})).Once()

		l := NewDatabaseLogger(mockLogger, mockTime, "error", 0)
		l.Trace(context.Background(), begin, insert, errors.New("disk I/O error"))
		l.Trace(context.Background(), begin, insert, gorm.ErrRecordNotFound)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)

		l := NewDatabaseLogger(mockLogger, nil, "silent", 0)
		l.Trace(context.Background(), begin, insert, errors.New("ignored"))
	})
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "purchases", extractTableName(`SELECT * FROM "purchases" WHERE user_id = 1`))
	assert.Equal(t, "migration_versions", extractTableName("INSERT INTO `migration_versions` (`version`) VALUES ('1')"))
	assert.Equal(t, "", extractTableName("PRAGMA foreign_keys"))
	assert.Equal(t, "SELECT", extractQueryType("  select 1"))
}
