package forecast

import "time"

// Config holds runtime knobs for data acquisition.
type Config struct {
	CacheTTL      time.Duration
	TrendingLimit int
}
