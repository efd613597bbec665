package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for retrying the initial connection
type RetryConfig struct {
	MaxTries      uint
	RetryInterval time.Duration
	MaxInterval   time.Duration
}

// connectRetryConfig derives the connect policy from the database config
func (c *Config) connectRetryConfig() RetryConfig {
	tries := uint(c.RetryAttempts)
	if tries == 0 {
		tries = 1
	}
	interval := c.RetryDelay
	if interval <= 0 {
		interval = time.Second
	}
	return RetryConfig{MaxTries: tries, RetryInterval: interval, MaxInterval: 8 * interval}
}

// retry runs operation with exponential backoff and jitter, logging each failed attempt
func retry[T any](ctx context.Context, cfg RetryConfig, logger coreport.Logger, what string, operation func() (T, error)) (T, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = cfg.RetryInterval
	expBackoff.MaxInterval = cfg.MaxInterval

	attempt := 0
	return backoff.Retry(ctx, func() (T, error) {
		attempt++
		out, err := operation()
		if err != nil {
			logger.Warn("Database operation failed, retrying", map[string]any{
				"operation": what,
				"attempt":   attempt,
				"of":        cfg.MaxTries,
				"error":     err.Error(),
			})
		}
		return out, err
	},
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(cfg.MaxTries),
		backoff.WithMaxElapsedTime(0),
	)
}
