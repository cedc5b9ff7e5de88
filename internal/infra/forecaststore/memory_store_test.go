package forecaststore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

func TestMemoryStoreDatasetExpires(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)

	ds := forecast.Dataset{Location: forecast.Location{Query: "oslo", Name: "Oslo"}}
	require.NoError(t, store.SaveDataset(ctx, "oslo", ds, 24*time.Hour))

	got, ok, err := store.GetDataset(ctx, "oslo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Oslo", got.Location.Name)

	clock.Advance(23*time.Hour + 59*time.Minute)
	_, ok, err = store.GetDataset(ctx, "oslo")
	require.NoError(t, err)
	require.True(t, ok)

	clock.Advance(time.Minute)
	_, ok, err = store.GetDataset(ctx, "oslo")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(clock)

	require.NoError(t, store.SaveDataset(ctx, "rome", forecast.Dataset{}, 0))
	clock.Advance(365 * 24 * time.Hour)

	_, ok, err := store.GetDataset(ctx, "rome")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStoreTrending(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(clockwork.NewFakeClock())

	require.NoError(t, store.IncrementCity(ctx, "new delhi", "New Delhi"))
	require.NoError(t, store.IncrementCity(ctx, "new delhi", "new  delhi"))
	require.NoError(t, store.IncrementCity(ctx, "oslo", "Oslo"))
	require.NoError(t, store.IncrementCity(ctx, "lima", ""))
	require.NoError(t, store.IncrementCity(ctx, "", "ignored"))

	top, err := store.TopCities(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []forecast.TrendingCity{
		{City: "New Delhi", Count: 2},
		{City: "Oslo", Count: 1},
	}, top)

	all, err := store.TopCities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(clockwork.NewFakeClock())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IncrementCity(ctx, "paris", "Paris")
			_ = store.SaveDataset(ctx, "paris", forecast.Dataset{}, time.Hour)
			_, _, _ = store.GetDataset(ctx, "paris")
		}()
	}
	wg.Wait()

	top, err := store.TopCities(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(16), top[0].Count)
}

func TestValkeyKeys(t *testing.T) {
	store := NewValkeyStore(nil, "")
	require.Equal(t, "weather:dataset:new delhi", store.datasetKey("new delhi"))
	require.Equal(t, "weather:trending", store.trendingKey())
	require.Equal(t, "weather:display:oslo", store.displayKey("oslo"))
}
