package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/companion-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/companion-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
)

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) persistence.UnitOfWork {
		t.Helper()
		uow := NewTestDBManager(t, logger.NewNoopLogger()).UnitOfWork()
		a, err := entity.NewAccount("acct_1", "a@x.io", "alice", "hash", 100, now)
		require.NoError(t, err)
		require.NoError(t, uow.GetAccountRepository(ctx).Create(ctx, a))
		return uow
	}

	t.Run("Commit persists every repository write", func(t *testing.T) {
		// Arrange
		uow := setup(t)

		// Act
		err := persistence.Transact(ctx, uow, func(txCtx context.Context) error {
			a, err := uow.GetAccountRepository(txCtx).GetByIDForUpdate(txCtx, "acct_1")
			if err != nil {
				return err
			}
			if err := a.Debit(40, now); err != nil {
				return err
			}
			if err := uow.GetAccountRepository(txCtx).UpdateLedgerState(txCtx, a); err != nil {
				return err
			}
			txn, err := entity.NewTransaction("txn_1", a.ID, entity.KindUsage, 40, "usage", "res_1", a.Balance(), now)
			if err != nil {
				return err
			}
			return uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
		})

		// Assert
		require.NoError(t, err)
		a, err := uow.GetAccountRepository(ctx).GetByID(ctx, "acct_1")
		require.NoError(t, err)
		assert.Equal(t, int64(60), a.Balance())
		sum, err := uow.GetTransactionRepository(ctx).SumByAccount(ctx, "acct_1")
		require.NoError(t, err)
		assert.Equal(t, int64(-40), sum)
	})

	t.Run("Rollback discards writes", func(t *testing.T) {
		uow := setup(t)
		failure := errors.New("provider down")

		err := persistence.Transact(ctx, uow, func(txCtx context.Context) error {
			a, err := uow.GetAccountRepository(txCtx).GetByIDForUpdate(txCtx, "acct_1")
			require.NoError(t, err)
			require.NoError(t, a.Debit(40, now))
			require.NoError(t, uow.GetAccountRepository(txCtx).UpdateLedgerState(txCtx, a))
			return failure
		})

		assert.ErrorIs(t, err, failure)
		a, err := uow.GetAccountRepository(ctx).GetByID(ctx, "acct_1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), a.Balance())
	})

	t.Run("Nested begin is rejected", func(t *testing.T) {
		uow := setup(t)

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = uow.Rollback(txCtx) }()

		_, err = uow.Begin(txCtx)
		assert.ErrorIs(t, err, errs.ErrNestedTransaction)
	})

	t.Run("Commit and rollback need a transaction", func(t *testing.T) {
		uow := setup(t)

		assert.ErrorIs(t, uow.Commit(ctx), errs.ErrNoTransaction)
		assert.ErrorIs(t, uow.Rollback(ctx), errs.ErrNoTransaction)
	})

	t.Run("Rollback after commit is harmless", func(t *testing.T) {
		uow := setup(t)

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Commit(txCtx))

		assert.NoError(t, uow.Rollback(txCtx))
	})
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Migration is idempotent", func(t *testing.T) {
		m := NewTestDBManager(t, logger.NewNoopLogger())

		require.NoError(t, m.Manager.Migrate(ctx))

		version, err := migration.NewMigrationManager(m.Manager.DB(), m.Logger, m.TimeProvider).GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)
		assert.NoError(t, m.Manager.HealthCheck(ctx))
	})

	t.Run("Memory driver", func(t *testing.T) {
		m := NewManager(&Config{Driver: DriverMemory}, logger.NewNoopLogger(), nil)

		require.NoError(t, m.Connect(ctx))
		require.NoError(t, m.Migrate(ctx))

		packages, err := m.CreateUnitOfWork().GetPackageRepository(ctx).ListActive(ctx)
		require.NoError(t, err)
		assert.Len(t, packages, 5)
		assert.NoError(t, m.HealthCheck(ctx))
		assert.Nil(t, m.SQLDB())
		assert.NoError(t, m.Close())
	})

	t.Run("Unknown driver", func(t *testing.T) {
		m := NewManager(&Config{Driver: "oracle"}, logger.NewNoopLogger(), nil)

		assert.Error(t, m.Connect(ctx))
	})
}

func TestConfigDSN(t *testing.T) {
	t.Run("sqlite file", func(t *testing.T) {
		c := &Config{Driver: DriverSQLite, Database: "data/app.db"}
		dsn := c.DSN()
		assert.Contains(t, dsn, "file:data/app.db?")
		assert.Contains(t, dsn, "journal_mode%28WAL%29")
		assert.False(t, c.InMemory())
	})

	t.Run("sqlite memory", func(t *testing.T) {
		c := &Config{Driver: DriverSQLite, Database: "file::memory:"}
		assert.True(t, c.InMemory())
		assert.NotContains(t, c.DSN(), "WAL")
		assert.Contains(t, c.DSN(), "file::memory:?")
	})

	t.Run("postgres", func(t *testing.T) {
		c := &Config{Driver: DriverPostgres, Host: "db", Port: "5432", Username: "u", Password: "p", Database: "ledger", SSLMode: "disable"}
		assert.Equal(t, "host=db port=5432 user=u password=p dbname=ledger sslmode=disable", c.DSN())
	})
}
