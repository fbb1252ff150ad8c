//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// WithTx runs fn in a transaction that is always rolled back, so tests can
// write freely without seeing each other's rows.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil && IsCI() {
		stats := db.Stats()
		t.Logf("pool stats: open=%d in_use=%d idle=%d",
			stats.OpenConnections, stats.InUse, stats.Idle)
	}
	require.NoError(t, err, "failed to begin test transaction on %s", MaskedURL())

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
