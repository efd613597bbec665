package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.1.0"

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// Models lists every table owned by the application
func Models() []any {
	return []any{
		&model.Account{},
		&model.Transaction{},
		&model.Persona{},
		&model.ConversationTurn{},
		&model.GeneratedImage{},
		&model.CreditPackage{},
		&model.PaymentEvent{},
		&model.Fulfillment{},
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion and seeds reference data
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Starting database migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"auto-migrate models", func(tx *gorm.DB) error { return tx.AutoMigrate(Models()...) }},
		{"create indexes", createIndexes},
		{"seed credit packages", SeedCreditPackages},
	}
	for _, step := range steps {
		if err := step.run(db); err != nil {
			m.logger.Error("Migration step failed", map[string]any{
				"step":  step.name,
				"error": err.Error(),
			})
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if db.Dialector.Name() == "postgres" {
		if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
			return fmt.Errorf("advanced indexes: %w", err)
		}
		m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// createIndexes creates indexes gorm tags cannot express. Both postgres and
// sqlite support partial unique indexes.
func createIndexes(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_kind_reference
		ON transactions (kind, reference)
		WHERE reference <> ''
	`).Error
}
