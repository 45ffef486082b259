package clients

import (
	"context"
	"fmt"

	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	"github.com/ZakatAsean/zakat_platform_app/internal/utils"
	"github.com/sony/gobreaker"
)

// SimulatedPaymentGateway stands in for a real payment gateway. It returns an
// opaque unique settlement reference; the format carries no meaning beyond
// uniqueness and is owned by the gateway, not by the caller.
type SimulatedPaymentGateway struct {
	breaker *gobreaker.CircuitBreaker
}

// NewSimulatedPaymentGateway creates the simulated gateway client.
func NewSimulatedPaymentGateway() *SimulatedPaymentGateway {
	return &SimulatedPaymentGateway{breaker: newCircuitBreaker("payment-gateway")}
}

// Charge settles a payment attempt. It respects ctx cancellation so the
// orchestrator's deadline is honored.
func (g *SimulatedPaymentGateway) Charge(ctx context.Context, req portsclients.ChargeRequest) (portsclients.ChargeResult, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ref, err := utils.RandomHex(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate settlement reference: %w", err)
		}
		return portsclients.ChargeResult{SettlementRef: "0x" + ref}, nil
	})
	if err != nil {
		return portsclients.ChargeResult{}, err
	}
	return result.(portsclients.ChargeResult), nil
}

var _ portsclients.PaymentGateway = (*SimulatedPaymentGateway)(nil)
