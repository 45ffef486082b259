// Package clients declares the contracts for external collaborators. All
// implementations are simulated in this deployment; real integrations replace
// them behind the same interfaces.
package clients

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeRequest is the input to a payment gateway charge.
type ChargeRequest struct {
	PaymentID    string
	Amount       decimal.Decimal
	CurrencyCode string
	OrgID        string
}

// ChargeResult is the gateway's settlement outcome. SettlementRef is an
// opaque unique string; its format is owned by the gateway.
type ChargeResult struct {
	SettlementRef string
}

// PaymentGateway performs the payment call for a PROCESSING attempt. The call
// must respect ctx cancellation; the orchestrator bounds it with a deadline.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// CreditReport is the outcome of a credit bureau lookup.
type CreditReport struct {
	Score int
}

// CreditBureau looks up a credit score for a user. Lookups are idempotent and
// may be retried once on failure.
type CreditBureau interface {
	CheckScore(ctx context.Context, userID string) (CreditReport, error)
}

// InvestmentDetails describes an investment product.
type InvestmentDetails struct {
	Name           string
	ProfitRate     decimal.Decimal
	HalalCertified bool
	RiskRating     string
}

// MarketData resolves details for an investment product type.
type MarketData interface {
	InvestmentDetails(ctx context.Context, investmentType string) (InvestmentDetails, error)
}
