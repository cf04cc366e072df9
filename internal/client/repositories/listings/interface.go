// Package listings stores product listings created on this device. They are
// merged into the catalog view until the remote service serves an entry with
// the same name and owner, at which point the remote copy wins.
package listings

import (
	"context"

	"github.com/craftedwonders/storefront/internal/client/models"
)

type Repository interface {
	// Add inserts a new local listing. The caller assigns the id.
	Add(ctx context.Context, p *models.Product) error

	// GetAll returns every local listing in insertion order.
	GetAll(ctx context.Context) ([]models.Product, error)

	// DeleteByID removes a local listing. Deleting an unknown id is a no-op.
	DeleteByID(ctx context.Context, id string) error
}
