//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/deckstudy/internal/platform/postgres"
	"github.com/phrazzld/deckstudy/internal/redact"
	"github.com/stretchr/testify/require"
)

// Timeout bounds connection checks, migrations and transaction setup.
const Timeout = 30 * time.Second

// ErrNoDatabaseURL is returned when none of DatabaseURLVars is set.
var ErrNoDatabaseURL = errors.New("no test database URL configured")

// Open connects to the test database and applies all migrations.
func Open(ctx context.Context) (*sql.DB, error) {
	dbURL := DatabaseURL()
	if dbURL == "" {
		return nil, ErrNoDatabaseURL
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %s", MaskedURL(), redact.Error(err))
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %s", MaskedURL(), redact.Error(err))
	}
	if err := postgres.Migrate(ctx, db, "up", nil); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return db, nil
}

// RunMain opens the shared test database into *db, runs the tests and closes
// it. Without a configured URL the tests are skipped with exit code 0.
func RunMain(m *testing.M, db **sql.DB) int {
	if ShouldSkip() {
		fmt.Println("no test database URL set, skipping integration tests")
		return 0
	}

	opened, err := Open(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "integration setup failed: %v\n", err)
		return 1
	}
	*db = opened

	code := m.Run()
	_ = opened.Close()
	return code
}

// MustOpen is Open for a single test, closing the database on cleanup.
func MustOpen(t *testing.T) *sql.DB {
	t.Helper()
	if ShouldSkip() {
		t.Skip("no test database URL set")
	}
	db, err := Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
