package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	timeprovider "github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides a migrated, private sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to a fresh in-memory sqlite database, migrates it
// and closes it when the test ends
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()
	config := &Config{
		Driver:        DriverSQLite,
		Database:      ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
		RetryDelay:    10 * time.Millisecond,
	}

	manager := NewManager(config, logger, timeProvider)
	if err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// UnitOfWork returns a unit of work over the test database
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}
