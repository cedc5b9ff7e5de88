package forecaststore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-insights/internal/domain/forecast"
)

const defaultTrendingLimit = 10

// ValkeyStore persists datasets and search counts in a Valkey-compatible database.
// Expiry is delegated to the server through SET EX.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetDataset(ctx context.Context, city string) (forecast.Dataset, bool, error) {
	if city == "" {
		return forecast.Dataset{}, false, nil
	}
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.datasetKey(city)).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return forecast.Dataset{}, false, nil
		}
		return forecast.Dataset{}, false, fmt.Errorf("get dataset: %w", err)
	}
	var ds forecast.Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return forecast.Dataset{}, false, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, true, nil
}

func (s *ValkeyStore) SaveDataset(ctx context.Context, city string, ds forecast.Dataset, ttl time.Duration) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	builder := s.client.B().Set().Key(s.datasetKey(city)).Value(valkey.BinaryString(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

func (s *ValkeyStore) IncrementCity(ctx context.Context, canonical, display string) error {
	if canonical == "" {
		return nil
	}
	if err := s.client.Do(ctx, s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(canonical).Build()).Error(); err != nil {
		return fmt.Errorf("increment city: %w", err)
	}
	if display != "" {
		_ = s.client.Do(ctx, s.client.B().Set().Key(s.displayKey(canonical)).Value(display).Nx().Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) TopCities(ctx context.Context, limit int) ([]forecast.TrendingCity, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load trending: %w", err)
	}
	scored, err := parseScored(arr)
	if err != nil {
		return nil, fmt.Errorf("load trending: %w", err)
	}
	out := make([]forecast.TrendingCity, 0, len(scored))
	for _, entry := range scored {
		out = append(out, forecast.TrendingCity{City: s.fetchDisplay(ctx, entry.member), Count: int64(entry.score)})
	}
	return out, nil
}

type scoredMember struct {
	member string
	score  float64
}

// scoredReply is the subset of *valkey.ValkeyMessage read by parseScored.
type scoredReply[T any] interface {
	*T
	ToArray() ([]T, error)
	ToString() (string, error)
	ToFloat64() (float64, error)
	AsFloat64() (float64, error)
}

// parseScored accepts both the RESP3 [[member, score], ...] and the flat RESP2
// [member, score, ...] replies of ZREVRANGE WITHSCORES.
func parseScored[T any, R scoredReply[T]](arr []T) ([]scoredMember, error) {
	out := make([]scoredMember, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			entry scoredMember
			err   error
		)
		if tuple, tupleErr := R(&arr[i]).ToArray(); tupleErr == nil && len(tuple) == 2 {
			if entry.member, err = R(&tuple[0]).ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if entry.score, err = R(&tuple[1]).ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			if i+1 >= len(arr) {
				break
			}
			if entry.member, err = R(&arr[i]).ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if entry.score, err = R(&arr[i+1]).AsFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *ValkeyStore) fetchDisplay(ctx context.Context, canonical string) string {
	display, err := s.client.Do(ctx, s.client.B().Get().Key(s.displayKey(canonical)).Build()).ToString()
	if err != nil || display == "" {
		return canonical
	}
	return display
}

func (s *ValkeyStore) datasetKey(city string) string {
	return fmt.Sprintf("%s:dataset:%s", s.prefix, city)
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending", s.prefix)
}

func (s *ValkeyStore) displayKey(canonical string) string {
	return fmt.Sprintf("%s:display:%s", s.prefix, canonical)
}

var _ forecast.Store = (*ValkeyStore)(nil)
