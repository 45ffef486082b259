package clients

import (
	"context"
	"fmt"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

var investmentProducts = map[string]portsclients.InvestmentDetails{
	"asb": {
		Name:           "Amanah Saham Bumiputera",
		ProfitRate:     decimal.NewFromFloat(5.5),
		HalalCertified: true,
		RiskRating:     "low",
	},
	"sukuk": {
		Name:           "Malaysian Government Sukuk",
		ProfitRate:     decimal.NewFromFloat(4.2),
		HalalCertified: true,
		RiskRating:     "low",
	},
	"robo_advisory": {
		Name:           "Shariah Robo-Advisory Portfolio",
		ProfitRate:     decimal.NewFromFloat(6.8),
		HalalCertified: true,
		RiskRating:     "medium",
	},
	"gold": {
		Name:           "Gold Investment Account",
		ProfitRate:     decimal.NewFromFloat(3.5),
		HalalCertified: true,
		RiskRating:     "medium",
	},
}

// SimulatedMarketData serves investment product details from a static catalog.
type SimulatedMarketData struct {
	breaker *gobreaker.CircuitBreaker
}

// NewSimulatedMarketData creates the simulated market data client.
func NewSimulatedMarketData() *SimulatedMarketData {
	return &SimulatedMarketData{breaker: newCircuitBreaker("market-data")}
}

// InvestmentDetails resolves the product catalog entry for investmentType.
func (m *SimulatedMarketData) InvestmentDetails(ctx context.Context, investmentType string) (portsclients.InvestmentDetails, error) {
	result, err := m.breaker.Execute(func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		details, ok := investmentProducts[investmentType]
		if !ok {
			return nil, fmt.Errorf("unknown investment type %q: %w", investmentType, apperrors.ErrValidation)
		}
		return details, nil
	})
	if err != nil {
		return portsclients.InvestmentDetails{}, err
	}
	return result.(portsclients.InvestmentDetails), nil
}

var _ portsclients.MarketData = (*SimulatedMarketData)(nil)
