package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ferdiebergado/gatekeep/internal/config"
)

// codeUniqueViolation is the SQLSTATE postgres reports for a unique constraint violation.
const codeUniqueViolation = "23505"

//go:embed schema.sql
var schema string

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Executor = (*sql.DB)(nil)
	_ Executor = (*sql.Tx)(nil)
)

// Connect opens a connection pool using the given dsn and validates it with a ping.
func Connect(ctx context.Context, cfg *config.DB, dsn string) (*sql.DB, error) {
	slog.Info("Connecting to the database...")

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx := ctx
	if timeout := cfg.PingTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.")

	return conn, nil
}

// Migrate creates the users table and its unique email constraint if they do not exist.
func Migrate(ctx context.Context, exec Executor) error {
	slog.Info("Applying database schema...")
	if _, err := exec.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	slog.Info("Database schema is up to date.")
	return nil
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
