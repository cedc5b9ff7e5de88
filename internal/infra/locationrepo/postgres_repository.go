package locationrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

const schema = `
	CREATE TABLE IF NOT EXISTS locations (
		query      TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		country    TEXT NOT NULL DEFAULT '',
		latitude   DOUBLE PRECISION NOT NULL,
		longitude  DOUBLE PRECISION NOT NULL,
		timezone   TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresRepository implements forecast.LocationRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the locations table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create locations table: %w", err)
	}
	return nil
}

// Find fetches a previously geocoded location by normalized query.
func (r *PostgresRepository) Find(ctx context.Context, query string) (forecast.Location, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT query, name, country, latitude, longitude, timezone
		FROM locations
		WHERE query = $1
	`, query)
	loc, err := scanLocation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return forecast.Location{}, false, nil
	}
	if err != nil {
		return forecast.Location{}, false, fmt.Errorf("find location: %w", err)
	}
	return loc, true, nil
}

// Save upserts the location keyed by its query.
func (r *PostgresRepository) Save(ctx context.Context, loc forecast.Location) error {
	if loc.Query == "" {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO locations (query, name, country, latitude, longitude, timezone, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (query) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
	`, loc.Query, loc.Name, loc.Country, loc.Latitude, loc.Longitude, loc.Timezone)
	if err != nil {
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (forecast.Location, error) {
	var loc forecast.Location
	if err := row.Scan(&loc.Query, &loc.Name, &loc.Country, &loc.Latitude, &loc.Longitude, &loc.Timezone); err != nil {
		return forecast.Location{}, err
	}
	return loc, nil
}

var _ forecast.LocationRepository = (*PostgresRepository)(nil)
