package dto

import (
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// CalculateZakatRequest defines the input for the calculation endpoint.
// Country is accepted for audit/display only; the engine never uses it.
// Assets and Debts are not tagged required so that zero values bind; the
// service rejects negatives.
type CalculateZakatRequest struct {
	Country  string          `json:"country" binding:"required"`
	Assets   decimal.Decimal `json:"assets"`
	Debts    decimal.Decimal `json:"debts"`
	Currency string          `json:"currency" binding:"required,currencycode"`
}

// CalculateZakatResponse mirrors the public calculation wire format.
// SessionToken is present only when a positive zakat amount is due; it is the
// opaque handle the payment endpoint redeems.
type CalculateZakatResponse struct {
	CalculationID  string          `json:"calculationId,omitempty"`
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	NetAssets      decimal.Decimal `json:"netAssets"`
	NisabStatus    string          `json:"nisabStatus"` // "above" | "below"
	ZakatAmount    decimal.Decimal `json:"zakatAmount"`
	ZakatTokens    decimal.Decimal `json:"zakatTokens"`
	Currency       string          `json:"currency"`
	CurrencySymbol string          `json:"currencySymbol"`
	SessionToken   string          `json:"sessionToken,omitempty"`
	SessionExpiry  *time.Time      `json:"sessionExpiry,omitempty"`
}

// ToCalculateZakatResponse converts a calculation to its wire representation.
func ToCalculateZakatResponse(calc *models.ZakatCalculation, symbol string) CalculateZakatResponse {
	return CalculateZakatResponse{
		CalculationID:  calc.CalculationID,
		NisabThreshold: calc.NisabThreshold,
		NetAssets:      calc.NetAssets,
		NisabStatus:    string(calc.NisabStatus),
		ZakatAmount:    calc.ZakatAmount,
		ZakatTokens:    calc.ZakatTokens,
		Currency:       calc.CurrencyCode,
		CurrencySymbol: symbol,
	}
}

// ZakatCalculationResponse is the representation used for calculation history.
type ZakatCalculationResponse struct {
	CalculationID  string          `json:"calculationID"`
	Country        string          `json:"country"`
	Currency       string          `json:"currency"`
	Assets         decimal.Decimal `json:"assets"`
	Debts          decimal.Decimal `json:"debts"`
	NetAssets      decimal.Decimal `json:"netAssets"`
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	NisabStatus    string          `json:"nisabStatus"`
	ZakatAmount    decimal.Decimal `json:"zakatAmount"`
	ZakatTokens    decimal.Decimal `json:"zakatTokens"`
	PaymentStatus  string          `json:"paymentStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToZakatCalculationResponse converts a models.ZakatCalculation to its history DTO.
func ToZakatCalculationResponse(calc *models.ZakatCalculation) ZakatCalculationResponse {
	return ZakatCalculationResponse{
		CalculationID:  calc.CalculationID,
		Country:        calc.Country,
		Currency:       calc.CurrencyCode,
		Assets:         calc.Assets,
		Debts:          calc.Debts,
		NetAssets:      calc.NetAssets,
		NisabThreshold: calc.NisabThreshold,
		NisabStatus:    string(calc.NisabStatus),
		ZakatAmount:    calc.ZakatAmount,
		ZakatTokens:    calc.ZakatTokens,
		PaymentStatus:  string(calc.PaymentStatus),
		CreatedAt:      calc.CreatedAt,
	}
}

// ToListZakatCalculationResponse converts a slice of calculations.
func ToListZakatCalculationResponse(calcs []models.ZakatCalculation) []ZakatCalculationResponse {
	res := make([]ZakatCalculationResponse, len(calcs))
	for i := range calcs {
		res[i] = ToZakatCalculationResponse(&calcs[i])
	}
	return res
}
