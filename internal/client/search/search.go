// Package search provides the catalog text filter: a pure match predicate
// and a debouncer that holds rapid keystrokes back until typing pauses.
package search

import (
	"strings"

	"github.com/craftedwonders/storefront/internal/client/models"
)

// Matches reports whether the product matches the search term with a
// case-insensitive substring test against name, material and description.
// Matching any one field is enough. The empty term matches everything.
func Matches(term string, p models.Product) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{p.Name, p.Material, p.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
