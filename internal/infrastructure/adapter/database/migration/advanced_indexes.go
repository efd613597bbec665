package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Purchases are looked up by payment correlation id on every webhook
		name: "idx_transactions_purchase_reference",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_purchase_reference
			ON transactions (reference) WHERE kind = 'purchase'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_images_liked",
		sql: `CREATE INDEX IF NOT EXISTS idx_images_liked
			ON generated_images (account_id, created_at DESC) WHERE liked`,
	},
}

// CreateAdvancedIndexes creates PostgreSQL indexes that gorm tags cannot express
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged, not fatal.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	tweaks := []string{
		// Accounts are updated on every ledger operation
		`ALTER TABLE accounts SET (fillfactor = 80)`,
		`ALTER TABLE transactions ALTER COLUMN account_id SET STATISTICS 1000`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
