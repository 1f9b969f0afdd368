// internal/storage/breaker.go
package storage

import (
	"time"

	"apollotrainer/pkg/logger"

	"github.com/sony/gobreaker"
)

// breaker opens after repeated connectivity failures so callers fail fast
// while the database is down. Not-found and constraint errors count as
// successes: the database answered.
var breaker = newBreaker(5, 10*time.Second)

func newBreaker(threshold uint32, cooldown time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "postgres",
		Timeout: cooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || kindFor(err) != KindConnectivity
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("database circuit breaker changed state")
		},
	})
}

func guard(fn func() error) error {
	_, err := breaker.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}
