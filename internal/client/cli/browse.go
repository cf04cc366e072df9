package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/craftedwonders/storefront/internal/client/models"
)

// List prints the current catalog view. The view is whatever the background
// watcher produced last; a fresh search term takes effect after the
// debounce fires and the next snapshot lands.
func (a *App) List(ctx context.Context) error {
	view := a.currentView()
	if len(view) == 0 {
		printlnFn("No products to show yet.")
		return nil
	}

	for i, p := range view {
		printlnFn(formatProduct(i+1, p))
	}
	return nil
}

// Search submits a new term to the debouncer. An empty term clears the
// filter.
func (a *App) Search(ctx context.Context, term string) error {
	a.debouncer.Submit(term)
	if term == "" {
		printlnFn("Search cleared.")
	} else {
		printlnFn(fmt.Sprintf("Searching for %q ...", term))
	}
	return nil
}

func formatProduct(n int, p models.Product) string {
	s := fmt.Sprintf("%2d. %s - ₹%s", n, p.Name, p.Price.String())
	if p.Material != "" {
		s += fmt.Sprintf(" (%s)", p.Material)
	}
	if p.Rating > 0 {
		s += fmt.Sprintf(" rating %.1f", float64(p.Rating))
	}
	if !p.Available() {
		s += " [out of stock]"
	}
	return s
}

// viewIndex resolves a 1-based product number typed by the user against the
// current view.
func (a *App) viewIndex(arg string) (models.Product, bool) {
	n, err := strconv.Atoi(arg)
	view := a.currentView()
	if err != nil || n < 1 || n > len(view) {
		printlnFn("No such product:", arg)
		return models.Product{}, false
	}
	return view[n-1], true
}
