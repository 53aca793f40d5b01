package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))

	tables := []string{
		"workouts",
		"exercises",
		"exercise_sets",
		"weight_logs",
		"sync_queue",
		"sync_metadata",
	}
	for _, table := range tables {
		var name string
		err = db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	// The metadata singleton row is seeded by the migration.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sync_metadata`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
