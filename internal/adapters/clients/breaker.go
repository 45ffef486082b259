// Package clients provides the simulated external collaborator
// implementations: payment gateway, credit bureau and market data. Each is
// wrapped in a circuit breaker so a real integration can replace the
// simulation without touching the resilience wiring.
package clients

import (
	"time"

	"github.com/sony/gobreaker"
)

// newCircuitBreaker creates a circuit breaker with defaults shared by all
// collaborator clients.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}
