package screening

import (
	"context"
	"sync"

	"github.com/riskzero/supplier-registry/internal/domain"
)

// Cache stores screening reports per supplier. Entries have no TTL: they
// stay valid until explicitly cleared or the backing store goes away.
type Cache interface {
	Get(ctx context.Context, key string) (*domain.ScreeningReport, bool, error)
	Save(ctx context.Context, key string, report *domain.ScreeningReport) error
	Clear(ctx context.Context, key string) error
}

// CacheKey derives the cache key for a supplier from its identity.
func CacheKey(supplier *domain.Supplier) string {
	return supplier.TaxID + "-" + supplier.LegalName
}

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.ScreeningReport
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*domain.ScreeningReport)}
}

// Get returns the cached report for the key, if any.
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.ScreeningReport, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	report, ok := c.entries[key]
	return report, ok, nil
}

// Save stores the report under the key, replacing any previous entry.
func (c *MemoryCache) Save(_ context.Context, key string, report *domain.ScreeningReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = report
	return nil
}

// Clear removes exactly the entry for the key.
func (c *MemoryCache) Clear(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
