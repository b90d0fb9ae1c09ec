package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kaay-diunde/backend/internal/catalog"
	"github.com/kaay-diunde/backend/internal/config"
	"github.com/kaay-diunde/backend/internal/search"
)

// ProductSource supplies the catalog snapshot the search engine runs over.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
}

// Engine owns the catalog snapshot and exposes the search entry points. The
// search core itself is pure; the engine's only mutable state is the snapshot
// it refreshes in the background.
type Engine struct {
	Config *config.Config
	Logger *logrus.Entry
	Source ProductSource

	mu          sync.RWMutex
	products    []catalog.Product
	lastRefresh time.Time
	isRunning   bool
	cancel      context.CancelFunc

	searches int64
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	CatalogSize    int
	SearchesServed int64
	LastRefresh    time.Time
}

// Outcome bundles a search result with the fallback recommendations the UI
// renders when the result list is empty.
type Outcome struct {
	search.Result
	Similar []catalog.Product
}

func NewEngine(cfg *config.Config, logger *logrus.Entry, source ProductSource) *Engine {
	return &Engine{
		Config: cfg,
		Logger: logger,
		Source: source,
	}
}

// Start loads the catalog once and begins the periodic refresh loop. A failed
// initial load is logged, not fatal; the loop will retry on the next tick.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.isRunning {
		e.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.isRunning = true
	e.mu.Unlock()

	if err := e.Refresh(ctx); err != nil {
		e.Logger.WithError(err).Error("Initial catalog load failed")
	}

	go e.refreshLoop(ctx)
}

// Stop cancels the refresh loop.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.isRunning && e.cancel != nil {
		e.cancel()
		e.isRunning = false
	}
}

func (e *Engine) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(e.Config.Catalog.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.Refresh(ctx); err != nil {
				e.Logger.WithError(err).Error("Catalog refresh failed")
			}
		}
	}
}

// Refresh fetches the product list and swaps in the new snapshot.
func (e *Engine) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, e.Config.Catalog.RequestTimeout)
	defer cancel()

	products, err := e.Source.FetchProducts(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.products = products
	e.lastRefresh = time.Now()
	e.mu.Unlock()

	e.Logger.Infof("Catalog snapshot refreshed: %d products", len(products))
	return nil
}

// Snapshot returns the current product list. Callers treat it as read-only.
func (e *Engine) Snapshot() []catalog.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.products
}

// Search runs a committed search over the current snapshot. When the ranked
// list comes back empty for a non-trivial query, the fallback recommender
// fills Outcome.Similar so the storefront can still show something sellable.
func (e *Engine) Search(query string, opts search.Options) Outcome {
	snapshot := e.Snapshot()

	outcome := Outcome{Result: search.SmartSearch(query, snapshot, opts)}
	if len(outcome.Products) == 0 && strings.TrimSpace(query) != "" && len(snapshot) > 0 {
		outcome.Similar = search.SimilarProducts(query, snapshot)
	}

	e.mu.Lock()
	e.searches++
	e.mu.Unlock()

	return outcome
}

// Suggest builds the autocomplete list for a partial query.
func (e *Engine) Suggest(query string) []search.Suggestion {
	return search.Suggestions(query, e.Snapshot())
}

// Similar exposes the fallback recommender directly.
func (e *Engine) Similar(query string) []catalog.Product {
	return search.SimilarProducts(query, e.Snapshot())
}

func (e *Engine) IsRunning() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.isRunning
}

func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		CatalogSize:    len(e.products),
		SearchesServed: e.searches,
		LastRefresh:    e.lastRefresh,
	}
}
