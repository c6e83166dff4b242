package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/gold-assistant/internal/domain/port/core"
	"github.com/amirhossein-jamali/gold-assistant/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step upgrades the schema from one version to the next
type step struct {
	from    string
	to      string
	details string
	run     func(ctx context.Context, db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	steps        []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		steps: []step{
			{from: "", to: "1.0.0", details: "Create purchases table", run: createPurchases},
			{from: "1.0.0", to: "1.1.0", details: "Add grams column and user index", run: addGramsAndIndex},
		},
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.steps {
		if s.from != currentVersion {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"from": s.from,
			"to":   s.to,
		})

		if err := s.run(ctx, db); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"error": err.Error(),
				"from":  s.from,
				"to":    s.to,
			})
			return err
		}
		if err := m.setVersion(ctx, s.to, s.details); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": s.to,
			})
			return err
		}
		currentVersion = s.to
	}

	if currentVersion != CurrentSchemaVersion {
		return errors.New("no migration path from schema version " + currentVersion)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// purchaseV1 is the purchases table as first shipped: the request fields only
type purchaseV1 struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null"`
	Amount    float64   `gorm:"not null"`
	Status    string    `gorm:"not null;size:20"`
	CreatedAt time.Time `gorm:"not null"`
}

func (purchaseV1) TableName() string {
	return "purchases"
}

func createPurchases(ctx context.Context, db *gorm.DB) error {
	if db.Migrator().HasTable("purchases") {
		return nil
	}
	return db.AutoMigrate(&purchaseV1{})
}

// addGramsAndIndex lets AutoMigrate add the columns and index declared on model.Purchase
func addGramsAndIndex(ctx context.Context, db *gorm.DB) error {
	if db.Migrator().HasTable("purchases") && !db.Migrator().HasColumn(&model.Purchase{}, "grams") {
		// existing rows predate the grams column; backfill as zero
		if err := db.Exec("ALTER TABLE purchases ADD COLUMN grams NUMERIC(20,6) NOT NULL DEFAULT 0").Error; err != nil {
			return err
		}
	}
	return db.AutoMigrate(&model.Purchase{})
}
