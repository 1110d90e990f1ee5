package config

import (
	"fmt"

	"github.com/andrew-solarstorm/go-packages/common"
)

const (
	DefaultBatchMaxSize = 1000
	DefaultBatchWorkers = 4
	DefaultRateLimit    = 50
	DefaultRateBurst    = 100
)

type SplitterConfig struct {
	// BatchMaxSize caps the number of amounts accepted by one batch request.
	// Default: 1000
	BatchMaxSize int

	// BatchWorkers is the number of goroutines a batch is fanned out over.
	// Default: 4
	BatchWorkers int

	// RateLimit is the sustained requests/second allowed per client IP.
	// Default: 50
	RateLimit int

	// RateBurst is the per-IP token bucket size.
	// Default: 100
	RateBurst int
}

func (c *SplitterConfig) Key() string {
	return SPLITTER_CONFIG_KEY
}

func (c *SplitterConfig) Load() error {
	c.BatchMaxSize = common.GetEnvOrDefaultInt("SPLIT_BATCH_MAX_SIZE", DefaultBatchMaxSize)
	c.BatchWorkers = common.GetEnvOrDefaultInt("SPLIT_BATCH_WORKERS", DefaultBatchWorkers)
	c.RateLimit = common.GetEnvOrDefaultInt("SPLIT_RATE_LIMIT", DefaultRateLimit)
	c.RateBurst = common.GetEnvOrDefaultInt("SPLIT_RATE_BURST", DefaultRateBurst)
	return c.Validate()
}

func (c *SplitterConfig) Validate() error {
	if c.BatchMaxSize <= 0 {
		return fmt.Errorf("invalid splitter config: batch max size %d", c.BatchMaxSize)
	}
	if c.BatchWorkers <= 0 {
		return fmt.Errorf("invalid splitter config: batch workers %d", c.BatchWorkers)
	}
	if c.RateLimit <= 0 || c.RateBurst < c.RateLimit {
		return fmt.Errorf("invalid splitter config: rate %d/s burst %d", c.RateLimit, c.RateBurst)
	}
	return nil
}

// DefaultSplitterConfig returns the configuration used when no env is set.
func DefaultSplitterConfig() *SplitterConfig {
	return &SplitterConfig{
		BatchMaxSize: DefaultBatchMaxSize,
		BatchWorkers: DefaultBatchWorkers,
		RateLimit:    DefaultRateLimit,
		RateBurst:    DefaultRateBurst,
	}
}
