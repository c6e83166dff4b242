package main

import (
	"path/filepath"
	"testing"

	domainerr "github.com/amirhossein-jamali/gold-assistant/internal/domain/error"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/config"
	coremocks "github.com/amirhossein-jamali/gold-assistant/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Environment: config.Test,
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "data.db"),
		},
		Logger: config.LoggerConfig{Level: "error"},
		LLM:    config.LLMConfig{Provider: config.ProviderCanned},
		Gold:   config.GoldConfig{RatePerGram: 6000},
	}
}

// closingLogger expects the store to be closed exactly once and tolerates every other log line
func closingLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info("Closing database connection", mock.Anything).Once()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestRunStartupFailureClosesStore(t *testing.T) {
	t.Run("Invalid gold rate", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Gold.RatePerGram = 0

		err := run(cfg, closingLogger(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerr.ErrInvalidGoldRate)
	})

	t.Run("Completion client cannot be built", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LLM = config.LLMConfig{Provider: config.ProviderGemini}

		err := run(cfg, closingLogger(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create completion client")
	})
}
