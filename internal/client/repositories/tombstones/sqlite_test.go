package tombstones

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE tombstones (id TEXT PRIMARY KEY);`)
	require.NoError(t, err)

	return db
}

func TestAddAndGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, "r1"))
	require.NoError(t, r.Add(ctx, "loc2"))
	// duplicate add is a no-op
	require.NoError(t, r.Add(ctx, "r1"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"r1": {}, "loc2": {}}, got)
}

func TestGetAll_Empty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
