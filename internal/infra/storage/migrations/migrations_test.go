package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	schema, err := fs.ReadFile(embedMigrations, "00001_init_schema.sql")
	require.NoError(t, err)
	sql := string(schema)

	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	for _, table := range []string{"courts", "business_hours", "time_slots", "reservations", "notifications", "users"} {
		assert.True(t, strings.Contains(sql, "CREATE TABLE "+table) || strings.Contains(sql, "CREATE TABLE IF NOT EXISTS "+table),
			"table %s is missing", table)
	}
	assert.Contains(t, sql, "time_slots_concrete_uniq")
	assert.Contains(t, sql, "reservations_active_slot_uniq")
}
