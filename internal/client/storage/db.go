// Package storage opens the client-local sqlite database, applies the
// embedded migrations and wires up the repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/craftedwonders/storefront/internal/client/migrations"
	"github.com/craftedwonders/storefront/internal/client/repositories/listings"
	"github.com/craftedwonders/storefront/internal/client/repositories/metadata"
	"github.com/craftedwonders/storefront/internal/client/repositories/tombstones"
	"github.com/craftedwonders/storefront/internal/dbx"
)

type Repositories struct {
	Listings   listings.Repository
	Tombstones tombstones.Repository
	Metadata   metadata.Repository
	DB         *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Listings:   listings.NewSQLiteRepository(db),
		Tombstones: tombstones.NewSQLiteRepository(db),
		Metadata:   metadata.NewSQLiteRepository(db),
		DB:         db,
	}, nil
}

// Transact runs fn against transaction-scoped copies of the repositories.
// Changes commit when fn returns nil and roll back otherwise.
func (r *Repositories) Transact(ctx context.Context, fn func(tx *Repositories) error) error {
	return dbx.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(&Repositories{
			Listings:   listings.NewSQLiteRepository(tx),
			Tombstones: tombstones.NewSQLiteRepository(tx),
			Metadata:   metadata.NewSQLiteRepository(tx),
		})
	})
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
