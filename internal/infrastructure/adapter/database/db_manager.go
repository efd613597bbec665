package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/repository/memory"
)

// PoolMonitorInterval is how often connection pool statistics are sampled
const PoolMonitorInterval = 30 * time.Second

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	memory       *memory.Store
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	monitor      *ConnectionPoolMonitor
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the configured backend, retrying with backoff until it answers a ping
func (m *Manager) Connect(ctx context.Context) error {
	if err := m.config.Validate(); err != nil {
		return fmt.Errorf("invalid database config: %w", err)
	}

	if m.config.Driver == DriverMemory {
		m.memory = memory.NewStore(entity.DefaultCreditPackages()...)
		m.logger.Info("Using in-memory store", nil)
		return nil
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	gormDB, err := retry(ctx, m.config.connectRetryConfig(), m.logger, "connect", func() (*gorm.DB, error) {
		return m.open(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", m.config.RetryAttempts, err)
	}

	m.db = gormDB

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	m.monitor = NewConnectionPoolMonitor(sqlDB.Stats, m.logger)
	m.monitor.Start(PoolMonitorInterval)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})
	return nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
	}

	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
		gormConfig.PrepareStmt = true
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	m.configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, m.queryTimeout())
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

func (m *Manager) configurePool(sqlDB *sql.DB) {
	if m.config.Driver == DriverSQLite {
		// sqlite allows one writer; an in-memory database also dies with its connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		if m.config.InMemory() {
			sqlDB.SetConnMaxLifetime(0)
			sqlDB.SetConnMaxIdleTime(0)
			return
		}
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
}

func (m *Manager) queryTimeout() time.Duration {
	if m.config.QueryTimeout > 0 {
		return m.config.QueryTimeout
	}
	return 5 * time.Second
}

// Migrate brings the schema up to date. The memory store needs no migration.
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance, nil for the memory driver
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the pooled connection handle, nil for the memory driver
func (m *Manager) SQLDB() *sql.DB {
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB
}

// CreateUnitOfWork creates a unit of work for the connected backend
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	if m.memory != nil {
		return memory.NewUnitOfWork(m.memory)
	}
	return NewUnitOfWork(m.db, m.logger)
}

// HealthCheck pings the database
func (m *Manager) HealthCheck(ctx context.Context) error {
	if m.memory != nil {
		return nil
	}
	sqlDB := m.SQLDB()
	if sqlDB == nil {
		return fmt.Errorf("database is not connected")
	}

	pingCtx, cancel := context.WithTimeout(ctx, m.queryTimeout())
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.monitor != nil {
		m.monitor.Stop()
	}
	sqlDB := m.SQLDB()
	if sqlDB == nil {
		return nil
	}
	return sqlDB.Close()
}
