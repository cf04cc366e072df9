package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/craftedwonders/storefront/internal/client/api"
	"github.com/craftedwonders/storefront/internal/client/cart"
	"github.com/craftedwonders/storefront/internal/client/catalog"
	"github.com/craftedwonders/storefront/internal/client/config"
	"github.com/craftedwonders/storefront/internal/client/models"
	"github.com/craftedwonders/storefront/internal/client/repositories/listings"
	"github.com/craftedwonders/storefront/internal/client/repositories/tombstones"
	"github.com/craftedwonders/storefront/internal/client/search"
	"github.com/craftedwonders/storefront/internal/client/session"
	"github.com/craftedwonders/storefront/internal/client/storage"
	"github.com/craftedwonders/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	client    *api.HTTPClient
	repos     *storage.Repositories
	session   *session.Manager
	cart      cart.Service
	catalog   *catalog.Service
	debouncer *search.Debouncer
	reader    *bufio.Reader

	// view is the latest catalog snapshot; written by the watcher
	// goroutine, read by the REPL.
	viewMu sync.Mutex
	view   []models.Product
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	client := api.NewHTTPClient(c.ServerEndpointAddr)

	catalogTx := func(ctx context.Context, fn func(l listings.Repository, t tombstones.Repository) error) error {
		return repos.Transact(ctx, func(tx *storage.Repositories) error {
			return fn(tx.Listings, tx.Tombstones)
		})
	}

	return &App{
		config:    c,
		log:       log,
		client:    client,
		repos:     repos,
		session:   session.NewManager(repos.Metadata, log),
		cart:      cart.NewService(client, repos.Metadata, log),
		catalog:   catalog.NewService(client, repos.Listings, repos.Tombstones, catalogTx, log),
		debouncer: search.NewDebouncer(c.SearchDebounce),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	if user := a.session.Restore(ctx); user != nil {
		a.client.SetToken(user.Token)
		a.cart.Load(ctx, user.Email)
		a.log.Info(ctx, "session restored", "email", user.Email)
	}

	go a.startCatalogWatcher(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close flushes pending cart pushes and releases resources.
func (a *App) Close() {
	a.debouncer.Stop()
	a.cart.Flush()
	_ = a.client.Close()
	_ = a.repos.Close()
}

// startCatalogWatcher keeps the catalog view fresh: it polls on the
// configured interval and re-evaluates immediately when a debounced search
// term fires.
func (a *App) startCatalogWatcher(ctx context.Context) {
	updates := make(chan []models.Product, 1)
	go a.catalog.Watch(ctx, a.config.PollInterval, a.debouncer.C(), updates)

	for {
		select {
		case snapshot := <-updates:
			a.setView(snapshot)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setView(products []models.Product) {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()
	a.view = products
}

func (a *App) currentView() []models.Product {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()
	return a.view
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) getStatus() string {
	if user := a.session.Current(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}
