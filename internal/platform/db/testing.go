package db

import (
	"database/sql"
	"os"
	"testing"

	"github.com/ferdiebergado/gatekeep/internal/config"
)

// Setup connects to the database named by DATABASE_URL, applies the schema and
// returns a transaction that is rolled back when the test ends.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set")
	}

	conn, err := Connect(t.Context(), &config.DB{Driver: "pgx"}, dsn)
	if err != nil {
		t.Fatalf("failed to connect to the database: %v", err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("failed to close the database: %v", err)
		}
	})

	if err := Migrate(t.Context(), conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	tx, err := conn.BeginTx(t.Context(), nil)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("failed to rollback transaction: %v", err)
		}
	})

	return conn, tx
}
