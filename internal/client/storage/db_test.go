package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftedwonders/storefront/internal/client/models"

	_ "modernc.org/sqlite"
)

func openTestRepos(t *testing.T) *Repositories {
	t.Helper()
	// a named shared-cache database keeps all pooled connections on the
	// same in-memory store
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	repos, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestOpen_MigratesAndWiresRepositories(t *testing.T) {
	ctx := context.Background()
	repos := openTestRepos(t)

	p := &models.Product{ID: "loc-1", Name: "Willow Basket", Price: models.NewPrice("549"), Owner: "maya@example.org"}
	require.NoError(t, repos.Listings.Add(ctx, p))

	all, err := repos.Listings.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Willow Basket", all[0].Name)

	require.NoError(t, repos.Tombstones.Add(ctx, "abc123"))
	dead, err := repos.Tombstones.GetAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, dead, "abc123")

	require.NoError(t, repos.Metadata.Set(ctx, "currentUser", []byte(`{}`)))
	v, err := repos.Metadata.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)
}

func TestOpen_Idempotent(t *testing.T) {
	ctx := context.Background()

	db, err := Open(ctx, "file:storage_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()

	// a second open against the same database must not re-run migrations
	db2, err := Open(ctx, "file:storage_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db2.Close()
}

func TestTransact_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	repos := openTestRepos(t)

	err := repos.Transact(ctx, func(tx *Repositories) error {
		if err := tx.Tombstones.Add(ctx, "abc123"); err != nil {
			return err
		}
		return tx.Listings.DeleteByID(ctx, "loc-1")
	})
	require.NoError(t, err)

	dead, err := repos.Tombstones.GetAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, dead, "abc123")
}

func TestTransact_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repos := openTestRepos(t)

	err := repos.Transact(ctx, func(tx *Repositories) error {
		if err := tx.Tombstones.Add(ctx, "abc123"); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)

	dead, err := repos.Tombstones.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, dead)
}
