package locationrepo

import (
	"context"
	"sync"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

// MemoryRepository is an in-memory LocationRepository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	byQuery map[string]forecast.Location
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byQuery: make(map[string]forecast.Location)}
}

// Find implements forecast.LocationRepository.
func (r *MemoryRepository) Find(_ context.Context, query string) (forecast.Location, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.byQuery[query]
	return loc, ok, nil
}

// Save implements forecast.LocationRepository. Later saves replace earlier ones.
func (r *MemoryRepository) Save(_ context.Context, loc forecast.Location) error {
	if loc.Query == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byQuery[loc.Query] = loc
	return nil
}

var _ forecast.LocationRepository = (*MemoryRepository)(nil)
