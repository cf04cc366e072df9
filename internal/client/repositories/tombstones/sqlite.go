// Package tombstones persists ids of deleted products. A tombstoned id is
// suppressed from the merged catalog view even while the remote service
// still returns it, covering the window between a local delete and the
// remote delete landing (or a delete of a local-only listing).
//
// The set is client-local and not replicated across devices.
package tombstones

import (
	"context"
	"fmt"

	"github.com/craftedwonders/storefront/internal/dbx"
)

type Repository interface {
	// Add records an id as deleted. Adding an existing id is a no-op.
	Add(ctx context.Context, id string) error

	// GetAll returns the full tombstone set.
	GetAll(ctx context.Context) (map[string]struct{}, error)
}

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO tombstones (id) VALUES (?) ON CONFLICT(id) DO NOTHING`, id)
	if err != nil {
		return fmt.Errorf("failed to insert tombstone: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM tombstones`)
	if err != nil {
		return nil, fmt.Errorf("failed to select tombstones: %w", err)
	}
	defer rows.Close()

	result := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
