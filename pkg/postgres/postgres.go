package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	migrations "github.com/DRSN-tech/store-api/db"
	"github.com/DRSN-tech/store-api/internal/cfg"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/jitter"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	connectBaseBackoff = 500 * time.Millisecond
	connectMaxBackoff  = 5 * time.Second
)

// PgDatabase инкапсулирует подключение к PostgreSQL и управление миграциями.
type PgDatabase struct {
	Pool *pgxpool.Pool
	Dsn  string
	cfg  *cfg.PGDBCfg
}

func NewPgDatabase(pool *pgxpool.Pool, cfg *cfg.PGDBCfg, dsn string) *PgDatabase {
	return &PgDatabase{Pool: pool, cfg: cfg, Dsn: dsn}
}

// Connect устанавливает соединение с PostgreSQL.
// База в контейнере может подниматься дольше приложения, поэтому подключение
// повторяется cfg.ConnectAttempts раз с экспоненциальной задержкой.
func Connect(ctx context.Context, cfg *cfg.PGDBCfg, logger logger.Logger) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"
	dsn := cfg.DSN()

	attempts := max(cfg.ConnectAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		pool, err := connectOnce(ctx, dsn)
		if err == nil {
			return NewPgDatabase(pool, cfg, dsn), nil
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		wait := jitter.ExponentialBackoff(connectBaseBackoff, connectMaxBackoff, attempt, jitter.DefaultJitter)
		logger.Warnf("database is not ready (attempt %d/%d), retrying in %s: %v", attempt+1, attempts, wait, err)

		select {
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		case <-time.After(wait):
		}
	}

	return nil, e.Wrap(op, lastErr)
}

func connectOnce(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции из встроенного каталога db/migrations.
func (db *PgDatabase) RunMigrations(logger logger.Logger) error {
	const op = "PgDatabase.RunMigrations"

	m, closeFn, err := db.newMigrate()
	if err != nil {
		return e.Wrap(op, err)
	}
	defer closeFn()

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return e.Wrap(op, err)
	}

	logger.Infof("migrations applied successfully")
	return nil
}

// ResetSchema откатывает все миграции и применяет их заново.
// Все данные в таблицах теряются.
func (db *PgDatabase) ResetSchema(_ context.Context, logger logger.Logger) error {
	const op = "PgDatabase.ResetSchema"

	m, closeFn, err := db.newMigrate()
	if err != nil {
		return e.Wrap(op, err)
	}
	defer closeFn()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return e.Wrap(op, err)
	}
	logger.Warnf("schema dropped")

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return e.Wrap(op, err)
	}
	logger.Infof("schema recreated")

	return nil
}

func (db *PgDatabase) newMigrate() (*migrate.Migrate, func(), error) {
	const (
		driverName         = "pgx"
		databaseDriverName = "postgres"
		sourceName         = "iofs"
	)

	sqlDb, err := sql.Open(driverName, db.Dsn)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		sqlDb.Close()
		return nil, nil, err
	}

	source, err := iofs.New(migrations.Migrations, migrations.MigrationsDir)
	if err != nil {
		sqlDb.Close()
		return nil, nil, err
	}

	m, err := migrate.NewWithInstance(sourceName, source, databaseDriverName, driver)
	if err != nil {
		sqlDb.Close()
		return nil, nil, err
	}

	return m, func() {
		m.Close()
		sqlDb.Close()
	}, nil
}
