// Package api contains the client for the remote storefront service. The
// service exposes a small REST/JSON surface: the product catalog, the
// per-user cart store, and user login. The rest of the client treats it as
// an opaque collaborator and maps every failure to one of the sentinel
// errors in errors.go.
package api

import (
	"context"

	"github.com/craftedwonders/storefront/internal/client/models"
)

type Client interface {
	Close() error

	// Register creates a new account on the server.
	Register(ctx context.Context, username, email, password string) error

	// Login authenticates and returns the identity plus its bearer token.
	Login(ctx context.Context, email, password string) (*models.User, error)

	// Products returns the full remote catalog.
	Products(ctx context.Context) ([]models.Product, error)

	// DeleteProduct removes a catalog entry if owner matches.
	DeleteProduct(ctx context.Context, id, owner string) error

	// Cart returns the stored cart for the given user email.
	Cart(ctx context.Context, email string) ([]models.LineItem, error)

	// SaveCart replaces the stored cart for the given user email.
	SaveCart(ctx context.Context, email string, items []models.LineItem) error
}
