package clients

import (
	"context"
	"hash/fnv"

	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	"github.com/sony/gobreaker"
)

// SimulatedCreditBureau derives a stable score from the user ID so repeated
// lookups for the same user agree, which matches the idempotency contract.
type SimulatedCreditBureau struct {
	breaker *gobreaker.CircuitBreaker
}

// NewSimulatedCreditBureau creates the simulated bureau client.
func NewSimulatedCreditBureau() *SimulatedCreditBureau {
	return &SimulatedCreditBureau{breaker: newCircuitBreaker("credit-bureau")}
}

// CheckScore returns a score in the 550-849 range.
func (b *SimulatedCreditBureau) CheckScore(ctx context.Context, userID string) (portsclients.CreditReport, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h := fnv.New32a()
		h.Write([]byte(userID))
		score := 550 + int(h.Sum32()%300)
		return portsclients.CreditReport{Score: score}, nil
	})
	if err != nil {
		return portsclients.CreditReport{}, err
	}
	return result.(portsclients.CreditReport), nil
}

var _ portsclients.CreditBureau = (*SimulatedCreditBureau)(nil)
