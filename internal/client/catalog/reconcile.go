// Package catalog builds the product view a shopper actually sees: remote
// catalog entries merged with listings created on this device, minus
// tombstoned deletions, filtered by the current search term.
package catalog

import (
	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/client/search"
)

// Merge combines remote catalog entries with local listings into one
// deduplicated sequence. A local listing whose (name, owner) key also
// appears remotely is dropped: the remote copy is authoritative. The result
// keeps merge order, remote entries first.
func Merge(remote, local []models.Product) []models.Product {
	remoteKeys := make(map[string]struct{}, len(remote))
	for _, p := range remote {
		remoteKeys[p.Key()] = struct{}{}
	}

	combined := make([]models.Product, 0, len(remote)+len(local))
	combined = append(combined, remote...)
	for _, p := range local {
		if _, shadowed := remoteKeys[p.Key()]; !shadowed {
			combined = append(combined, p)
		}
	}

	// unique by key, first occurrence wins; with remote entries first this
	// keeps the remote copy on any remaining collision
	seen := make(map[string]struct{}, len(combined))
	result := make([]models.Product, 0, len(combined))
	for _, p := range combined {
		if _, dup := seen[p.Key()]; dup {
			continue
		}
		seen[p.Key()] = struct{}{}
		result = append(result, p)
	}
	return result
}

// ApplyFilters removes tombstoned products and applies the search term,
// preserving order. A product is tombstoned when either of its identifiers
// is in the set, regardless of which source produced it.
func ApplyFilters(products []models.Product, tombstoned map[string]struct{}, term string) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if isTombstoned(tombstoned, p) {
			continue
		}
		if !search.Matches(term, p) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func isTombstoned(tombstoned map[string]struct{}, p models.Product) bool {
	if p.ID != "" {
		if _, ok := tombstoned[p.ID]; ok {
			return true
		}
	}
	if p.RemoteID != "" {
		if _, ok := tombstoned[p.RemoteID]; ok {
			return true
		}
	}
	return false
}
