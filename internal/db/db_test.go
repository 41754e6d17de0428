package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/linguacards/internal/db"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var tables []string
	err = database.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	assert.Contains(t, tables, "languages")
	assert.Contains(t, tables, "phrases")
	assert.Contains(t, tables, "schema_migrations")

	var applied int
	require.NoError(t, database.Get(&applied, `SELECT COUNT(*) FROM schema_migrations`))
	assert.Equal(t, 2, applied)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Migrate(context.Background()))
	require.NoError(t, database.Ping(context.Background()))

	var applied int
	require.NoError(t, database.Get(&applied, `SELECT COUNT(*) FROM schema_migrations`))
	assert.Equal(t, 2, applied)
}
