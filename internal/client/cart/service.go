// Package cart owns the in-memory cart for the active session and keeps it
// synchronized with the remote per-user cart store. Mutations apply
// synchronously; the remote push is fire-and-forget: issued in call order
// but not serialized, last write wins on the server, failures logged and
// never surfaced.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/craftedwonders/storefront/internal/client/api"
	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/client/repositories/metadata"
	"github.com/craftedwonders/storefront/internal/logging"
)

// mirrorKey is the metadata slot holding the local cart mirror. Single
// slot, not per-user: the mirror is a recovery artifact, never read on
// load.
const mirrorKey = "cartItems"

// Service is the cart owned by the active session. It is not safe for
// concurrent mutation; the cart belongs to exactly one interactive session
// at a time.
type Service interface {
	// Load replaces the cart with the remote cart stored for email and
	// mirrors the loaded items locally. Any fetch failure results in an
	// empty cart, not an error; the mirror is left untouched then.
	Load(ctx context.Context, email string)

	// Add appends a normalized line item and saves.
	Add(ctx context.Context, p models.Product)

	// Remove drops the item at the given position and saves. Out-of-range
	// positions are ignored.
	Remove(ctx context.Context, index int)

	// Items returns a snapshot copy of the cart.
	Items() []models.LineItem

	// Clear empties the cart and forgets the user, leaving the remote
	// record untouched for the next login.
	Clear(ctx context.Context)

	// Flush waits for in-flight background pushes. Call before exiting.
	Flush()
}

type service struct {
	client api.Client
	mirror metadata.Repository
	log    logging.Logger

	email string
	items []models.LineItem
	wg    sync.WaitGroup
}

func NewService(client api.Client, mirror metadata.Repository, log logging.Logger) Service {
	return &service{client: client, mirror: mirror, log: log}
}

func (s *service) Load(ctx context.Context, email string) {
	s.email = email

	items, err := s.client.Cart(ctx, email)
	if err != nil {
		s.log.Warn(ctx, "cart fetch failed, starting with empty cart", "email", email, "error", err)
		s.items = nil
		return
	}

	normalized := make([]models.LineItem, len(items))
	for i := range items {
		normalized[i] = items[i].Normalize()
	}
	s.items = normalized
	s.writeMirror(ctx, normalized)
}

func (s *service) Add(ctx context.Context, p models.Product) {
	s.items = append(s.items, models.NewLineItem(p))
	s.save(ctx)
}

func (s *service) Remove(ctx context.Context, index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.save(ctx)
}

func (s *service) Items() []models.LineItem {
	snapshot := make([]models.LineItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *service) Clear(ctx context.Context) {
	s.items = nil
	s.email = ""
	s.writeMirror(ctx, []models.LineItem{})
}

func (s *service) Flush() {
	s.wg.Wait()
}

// save re-normalizes the cart, mirrors it locally, and pushes it to the
// remote store in the background when a user is logged in.
func (s *service) save(ctx context.Context) {
	snapshot := make([]models.LineItem, len(s.items))
	for i := range s.items {
		snapshot[i] = s.items[i].Normalize()
	}

	s.writeMirror(ctx, snapshot)

	email := s.email
	if email == "" {
		return
	}

	s.wg.Add(1)
	// detached from the caller so a cancelled prompt cannot abort the push
	pushCtx := context.WithoutCancel(ctx)
	go func() {
		defer s.wg.Done()
		if err := s.client.SaveCart(pushCtx, email, snapshot); err != nil {
			s.log.Error(pushCtx, "cart push failed", "email", email, "items", len(snapshot), "error", err)
		}
	}()
}

func (s *service) writeMirror(ctx context.Context, items []models.LineItem) {
	b, err := json.Marshal(items)
	if err != nil {
		s.log.Error(ctx, "encoding cart mirror failed", "error", err)
		return
	}
	if err := s.mirror.Set(ctx, mirrorKey, b); err != nil {
		s.log.Warn(ctx, "writing cart mirror failed", "error", err)
	}
}
