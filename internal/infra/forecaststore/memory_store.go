package forecaststore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

type datasetEntry struct {
	payload   forecast.Dataset
	expiresAt time.Time
}

// MemoryStore keeps datasets and search counts in process memory.
type MemoryStore struct {
	clock clockwork.Clock

	mu       sync.RWMutex
	datasets map[string]datasetEntry
	trending map[string]int64
	displays map[string]string
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		clock:    clock,
		datasets: make(map[string]datasetEntry),
		trending: make(map[string]int64),
		displays: make(map[string]string),
	}
}

// GetDataset implements forecast.Store. Expired entries are evicted on read.
func (s *MemoryStore) GetDataset(_ context.Context, city string) (forecast.Dataset, bool, error) {
	s.mu.RLock()
	entry, ok := s.datasets[city]
	s.mu.RUnlock()
	if !ok {
		return forecast.Dataset{}, false, nil
	}
	if s.expired(entry.expiresAt) {
		s.mu.Lock()
		if current, still := s.datasets[city]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(s.datasets, city)
		}
		s.mu.Unlock()
		return forecast.Dataset{}, false, nil
	}
	return entry.payload, true, nil
}

// SaveDataset caches ds. A non-positive ttl never expires.
func (s *MemoryStore) SaveDataset(_ context.Context, city string, ds forecast.Dataset, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = s.clock.Now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[city] = datasetEntry{payload: ds, expiresAt: exp}
	return nil
}

// IncrementCity bumps the counter for a canonical city and records its first display form.
func (s *MemoryStore) IncrementCity(_ context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending[canonical]++
	if _, exists := s.displays[canonical]; !exists {
		s.displays[canonical] = display
	}
	return nil
}

// TopCities returns the most searched cities, ties broken alphabetically.
func (s *MemoryStore) TopCities(_ context.Context, limit int) ([]forecast.TrendingCity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.trending)
	}
	items := make([]forecast.TrendingCity, 0, len(s.trending))
	for canonical, count := range s.trending {
		display := s.displays[canonical]
		if display == "" {
			display = canonical
		}
		items = append(items, forecast.TrendingCity{City: display, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].City < items[j].City
		}
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *MemoryStore) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return !s.clock.Now().Before(ts)
}

var _ forecast.Store = (*MemoryStore)(nil)
