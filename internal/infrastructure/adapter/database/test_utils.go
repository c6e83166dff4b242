package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a real store.
// It uses a sqlite file under t.TempDir() unless TEST_DB_DRIVER selects postgres or mysql.
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates, connects and migrates a test database.
// Everything is closed through t.Cleanup.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        getEnvOrDefault("TEST_DB_DRIVER", DriverSQLite),
		Path:          filepath.Join(t.TempDir(), "nested", "test.db"),
		Host:          getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:          ParsePort(getEnvOrDefault("TEST_DB_PORT", "5432")),
		Username:      getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:      getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:      getEnvOrDefault("TEST_DB_DATABASE", "gold_assistant_test"),
		SSLMode:       getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		LogLevel:      "silent",
		RetryAttempts: 1, // fail fast
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	m := &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}

	if config.Driver != DriverSQLite {
		m.dropAllTables(t)
	}
	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return m
}

// DB returns the connected gorm handle
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CountPurchases returns the number of rows in the purchases table
func (m *TestDBManager) CountPurchases(t *testing.T) int64 {
	t.Helper()

	var count int64
	if err := m.DB().Model(&model.Purchase{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count purchases: %v", err)
	}
	return count
}

// dropAllTables gives shared servers a clean schema
func (m *TestDBManager) dropAllTables(t *testing.T) {
	t.Helper()

	if err := m.DB().Migrator().DropTable(&model.Purchase{}, &model.MigrationVersion{}); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
