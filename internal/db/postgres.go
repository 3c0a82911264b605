package db

import (
	"context"
	"fmt"
	"time"

	pgxzerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/yigit/studentroster/internal/config"
	"github.com/yigit/studentroster/internal/pkg/apperrors"
	"github.com/yigit/studentroster/internal/pkg/helpers"
	"github.com/yigit/studentroster/internal/pkg/logger"
)

// Conn is a connection checked out of the pool. Callers must Release it.
// *pgxpool.Conn satisfies it.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Release()
}

// Gateway hands out scoped database connections.
type Gateway interface {
	// Acquire returns a live connection or an error wrapping
	// apperrors.ErrConnectionFailed. It never returns a nil Conn with a nil error.
	Acquire(ctx context.Context) (Conn, error)
	// Ping reports whether a connection can currently be acquired and used.
	Ping(ctx context.Context) error
}

// PostgresDB database connection structure
type PostgresDB struct {
	Pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewPostgresDB creates a new PostgreSQL connection pool and verifies it with a ping.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	database, err := NewLazyPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return database, nil
}

// NewLazyPostgresDB creates the pool without opening any connection.
func NewLazyPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	// Statement tracing only at debug level
	if level := logger.PgxTraceLevel(); level != tracelog.LogLevelNone {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzerolog.NewLogger(logger.Get()),
			LogLevel: level,
		}
	}

	// Drop connections that went bad while idle
	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	return &PostgresDB{
		Pool:           pool,
		acquireTimeout: helpers.ParseDuration(cfg.Database.AcquireTimeout, 5*time.Second),
	}, nil
}

// Acquire checks a connection out of the pool.
func (db *PostgresDB) Acquire(ctx context.Context) (Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	conn, err := db.Pool.Acquire(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConnectionFailed, err)
	}
	return conn, nil
}

// Ping acquires a connection, pings the server and releases the connection.
func (db *PostgresDB) Ping(ctx context.Context) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrConnectionFailed, err)
	}
	return nil
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Beginner starts transactions. Conn and pgx.Tx both satisfy it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs fn inside a transaction on conn. The transaction is
// committed only when fn returns nil.
func WithTransaction(ctx context.Context, conn Beginner, fn TransactionFn) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
