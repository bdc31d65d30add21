package common

import (
	"context"
	"log"
	"time"

	"github.com/rs/zerolog"
)

type RetryConfig struct {
	ShouldRetry func(attemptNumber uint32, err error) bool
	NextDelay   func(attemptNumber uint32) time.Duration
}

type RetryRunner struct {
	config RetryConfig
	logger zerolog.Logger
}

func NewRetryRunner(config RetryConfig, logger zerolog.Logger) RetryRunner {
	return RetryRunner{
		config: config,
		logger: logger,
	}
}

func (r *RetryRunner) Do(ctx context.Context, action func(ctx context.Context) error) error {
	attemptNumber := uint32(0)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptNumber++
		err := action(ctx)
		if err == nil || !r.config.ShouldRetry(attemptNumber, err) {
			return err
		}

		delay := r.config.NextDelay(attemptNumber)
		r.logger.Warn().Err(err).Msgf("operation failed, retrying in %s", delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func LimitRetries(maxAttempts uint32) func(attemptNumber uint32, err error) bool {
	return func(attemptNumber uint32, _ error) bool {
		return attemptNumber < maxAttempts
	}
}

// DoNotRetryIf stops retrying as soon as the error matches one of the given predicates.
func DoNotRetryIf(next func(uint32, error) bool, permanent ...func(error) bool) func(uint32, error) bool {
	return func(attemptNumber uint32, err error) bool {
		for _, isPermanent := range permanent {
			if isPermanent(err) {
				return false
			}
		}
		return next(attemptNumber, err)
	}
}

// ExponentialDelay doubles the delay for each attempt starting from baseDelay, capped by maxDelay.
func ExponentialDelay(baseDelay, maxDelay time.Duration) func(attemptNumber uint32) time.Duration {
	if baseDelay > maxDelay {
		log.Panicf("baseDelay %s > maxDelay %s", baseDelay, maxDelay)
	}

	return func(attemptNumber uint32) time.Duration {
		result := baseDelay
		for i := uint32(1); i < attemptNumber; i++ {
			result *= 2
			if result >= maxDelay {
				return maxDelay
			}
		}
		return result
	}
}
