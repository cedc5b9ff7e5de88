package forecast

import (
	"context"
	"time"
)

// Geocoder resolves a free text city name. found is false when nothing matched.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (loc Location, found bool, err error)
}

// Provider fetches the upstream series for a location, always in metric units.
type Provider interface {
	FetchHourly(ctx context.Context, loc Location) (Hourly, error)
	FetchDaily(ctx context.Context, loc Location) (Daily, error)
	FetchAirQuality(ctx context.Context, loc Location) (AirQuality, error)
	FetchMarine(ctx context.Context, loc Location) (Marine, error)
}

// Store defines the persistence contract for cached datasets and search counts.
type Store interface {
	GetDataset(ctx context.Context, city string) (Dataset, bool, error)
	SaveDataset(ctx context.Context, city string, ds Dataset, ttl time.Duration) error
	IncrementCity(ctx context.Context, canonical, display string) error
	TopCities(ctx context.Context, limit int) ([]TrendingCity, error)
}

// LocationRepository remembers geocoding results by normalized query.
type LocationRepository interface {
	Find(ctx context.Context, query string) (Location, bool, error)
	Save(ctx context.Context, loc Location) error
}
