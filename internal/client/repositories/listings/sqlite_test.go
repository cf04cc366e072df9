package listings

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedwonders/storefront/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE listings (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price TEXT NOT NULL DEFAULT '0',
  material TEXT NOT NULL DEFAULT '',
  rating REAL NOT NULL DEFAULT 0,
  image TEXT NOT NULL DEFAULT '',
  owner TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  stock INTEGER
);
`)
	require.NoError(t, err)

	return db
}

func TestAddAndGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	stock := 5
	p := &models.Product{
		ID:       "loc1",
		Name:     "Clay Pot",
		Price:    models.NewPrice("350"),
		Material: "clay",
		Rating:   4.2,
		Owner:    "maker@example.com",
		Stock:    &stock,
	}
	require.NoError(t, r.Add(ctx, p))
	require.NoError(t, r.Add(ctx, &models.Product{ID: "loc2", Name: "Jute Rug", Price: models.NewPrice("899")}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// insertion order preserved
	assert.Equal(t, "loc1", got[0].ID)
	assert.Equal(t, "350", got[0].Price.String())
	assert.Equal(t, models.Rating(4.2), got[0].Rating)
	require.NotNil(t, got[0].Stock)
	assert.Equal(t, 5, *got[0].Stock)

	assert.Equal(t, "loc2", got[1].ID)
	assert.Nil(t, got[1].Stock)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Add(ctx, &models.Product{ID: "loc1", Name: "Clay Pot"}))
	require.NoError(t, r.DeleteByID(ctx, "loc1"))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// unknown id is a no-op
	require.NoError(t, r.DeleteByID(ctx, "ghost"))
}
