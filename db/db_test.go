package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrateIsIdempotent(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestLoadTestDataIsIdempotent(t *testing.T) {
	database := openTestDB(t)
	require.NoError(t, Migrate(database))

	require.NoError(t, LoadTestData(database))
	require.NoError(t, LoadTestData(database))

	var contacts, units, leases int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&contacts))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM units").Scan(&units))
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM leases").Scan(&leases))
	assert.Equal(t, 2, contacts)
	assert.Equal(t, 1, units)
	assert.Equal(t, 1, leases)

	var status string
	require.NoError(t, database.QueryRow("SELECT status FROM units WHERE unit_number = 'A1'").Scan(&status))
	assert.Equal(t, "OCCUPIED", status)
}
