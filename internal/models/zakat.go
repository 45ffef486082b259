package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NisabStatus indicates whether net assets reached the nisab threshold.
type NisabStatus string

const (
	NisabAbove NisabStatus = "above"
	NisabBelow NisabStatus = "below"
)

// CalculationPaymentStatus tracks whether a calculation has been settled.
// This is the only allowed mutation of a persisted calculation.
type CalculationPaymentStatus string

const (
	CalculationUnpaid CalculationPaymentStatus = "UNPAID"
	CalculationPaid   CalculationPaymentStatus = "PAID"
)

// ZakatCalculation is the outcome of one calculation request. The computed
// fields are never mutated after creation, apart from the payment status flip
// when a later payment completes.
type ZakatCalculation struct {
	CalculationID  string                   `json:"calculationID"` // Primary Key (UUID)
	UserID         string                   `json:"userID"`        // empty for anonymous calculations
	Country        string                   `json:"country"`       // kept for audit only, never used by the engine
	CurrencyCode   string                   `json:"currencyCode"`
	Assets         decimal.Decimal          `json:"assets"`
	Debts          decimal.Decimal          `json:"debts"`
	NetAssets      decimal.Decimal          `json:"netAssets"` // may be negative
	NisabThreshold decimal.Decimal          `json:"nisabThreshold"`
	NisabStatus    NisabStatus              `json:"nisabStatus"`
	ZakatAmount    decimal.Decimal          `json:"zakatAmount"`
	ZakatTokens    decimal.Decimal          `json:"zakatTokens"`
	PaymentStatus  CalculationPaymentStatus `json:"paymentStatus"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// PaymentState is the lifecycle state of one payment attempt.
// PROCESSING transitions to exactly one terminal state and is immutable after.
type PaymentState string

const (
	PaymentProcessing PaymentState = "PROCESSING"
	PaymentCompleted  PaymentState = "COMPLETED"
	PaymentFailed     PaymentState = "FAILED"
)

// ZakatPayment records one payment attempt for a calculation. A failed attempt
// is never mutated again; a retry is a fresh ZakatPayment row.
type ZakatPayment struct {
	PaymentID      string          `json:"paymentID"` // Primary Key (e.g., "zkt2026-...")
	CalculationID  string          `json:"calculationID"`
	UserID         string          `json:"userID"`
	OrgID          string          `json:"orgID"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Status         PaymentState    `json:"status"`
	SettlementRef  string          `json:"settlementRef"`  // opaque reference from the gateway
	CertificateURL string          `json:"certificateURL"` // zakat certificate location
	FailureCause   string          `json:"failureCause"`
	CreatedAt      time.Time       `json:"createdAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}
