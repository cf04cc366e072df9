package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/craftedwonders/storefront/internal/client/api"
	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/client/repositories/listings"
	"github.com/craftedwonders/storefront/internal/client/repositories/tombstones"
	"github.com/craftedwonders/storefront/internal/logging"
)

// TxRunner runs fn against repositories scoped to a single transaction,
// committing when fn returns nil and rolling back otherwise.
type TxRunner func(ctx context.Context, fn func(l listings.Repository, t tombstones.Repository) error) error

// Service assembles catalog snapshots from the remote service and the local
// repositories, and keeps them fresh via polling.
type Service struct {
	client     api.Client
	listings   listings.Repository
	tombstones tombstones.Repository
	tx         TxRunner
	log        logging.Logger

	// refresh nudges the watch loop after a local mutation so the view
	// reflects it before the next poll tick.
	refresh chan struct{}
}

func NewService(client api.Client, listings listings.Repository, tombstones tombstones.Repository, tx TxRunner, log logging.Logger) *Service {
	return &Service{
		client:     client,
		listings:   listings,
		tombstones: tombstones,
		tx:         tx,
		log:        log,
		refresh:    make(chan struct{}, 1),
	}
}

// Snapshot produces the current merged, filtered catalog view. It never
// fails: an unreachable remote catalog degrades to the built-in seed
// catalog plus local listings, and local read errors degrade to empty
// inputs. Degradations are logged, not surfaced.
func (s *Service) Snapshot(ctx context.Context, term string) []models.Product {
	local, err := s.listings.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "reading local listings failed", "error", err)
		local = nil
	}

	dead, err := s.tombstones.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "reading tombstones failed", "error", err)
		dead = nil
	}

	var merged []models.Product
	remote, err := s.client.Products(ctx)
	if err != nil {
		s.log.Warn(ctx, "remote catalog unavailable, using seed catalog", "error", err)
		// offline path: plain concatenation, no remote-wins pass
		merged = append(append([]models.Product{}, SeedCatalog()...), local...)
	} else {
		merged = Merge(remote, local)
	}

	return ApplyFilters(merged, dead, term)
}

// Watch emits a fresh snapshot on every poll tick, immediately whenever a
// new search term arrives on terms, and immediately after a local mutation
// (AddListing, Delete) changes the listing or tombstone set. It blocks
// until ctx is cancelled.
func (s *Service) Watch(ctx context.Context, interval time.Duration, terms <-chan string, out chan<- []models.Product) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	term := ""
	emit := func() {
		snapshot := s.Snapshot(ctx, term)
		select {
		case out <- snapshot:
		case <-ctx.Done():
		}
	}

	emit()
	for {
		select {
		case <-ticker.C:
			emit()
		case <-s.refresh:
			emit()
		case t, ok := <-terms:
			if !ok {
				terms = nil
				continue
			}
			term = t
			emit()
		case <-ctx.Done():
			return
		}
	}
}

// requestRefresh wakes the watch loop without waiting for the next tick.
// Non-blocking; coalesces when a refresh is already pending.
func (s *Service) requestRefresh() {
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// AddListing stores a product created on this device and returns it with
// its assigned id.
func (s *Service) AddListing(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	p.RemoteID = ""

	if err := s.listings.Add(ctx, &p); err != nil {
		return models.Product{}, fmt.Errorf("saving listing: %w", err)
	}

	s.requestRefresh()
	return p, nil
}

// Delete removes a product from the catalog view. The tombstone and the
// local listing row are written in one transaction, so the entry cannot
// reappear half-deleted. Remote entries owned by ownerEmail get a
// best-effort remote delete afterwards.
func (s *Service) Delete(ctx context.Context, p models.Product, ownerEmail string) error {
	err := s.tx(ctx, func(l listings.Repository, t tombstones.Repository) error {
		if id := p.AnyID(); id != "" {
			if err := t.Add(ctx, id); err != nil {
				return fmt.Errorf("recording tombstone: %w", err)
			}
		}
		if p.ID != "" {
			if err := l.DeleteByID(ctx, p.ID); err != nil {
				return fmt.Errorf("deleting local listing: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.requestRefresh()

	if p.RemoteID != "" && ownerEmail != "" && p.Owner == ownerEmail {
		if err := s.client.DeleteProduct(ctx, p.RemoteID, ownerEmail); err != nil {
			// tombstone already hides it locally
			s.log.Warn(ctx, "remote delete failed", "id", p.RemoteID, "error", err)
		}
	}
	return nil
}
