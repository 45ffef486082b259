package dto

import (
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the input for opening an investment account.
type CreateInvestmentRequest struct {
	InvestmentType string          `json:"investmentType" binding:"required,oneof=asb sukuk robo_advisory gold"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
}

// InvestmentAccountResponse defines the data returned for an opened investment.
type InvestmentAccountResponse struct {
	InvestmentID   string          `json:"investmentId"`
	InvestmentType string          `json:"investmentType"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	ProfitRate     decimal.Decimal `json:"profitRate"`
	HalalCertified bool            `json:"halalCertified"`
	RiskRating     string          `json:"riskRating"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToInvestmentAccountResponse converts a models.InvestmentAccount to its DTO.
func ToInvestmentAccountResponse(acc *models.InvestmentAccount, name string) InvestmentAccountResponse {
	return InvestmentAccountResponse{
		InvestmentID:   acc.InvestmentID,
		InvestmentType: acc.InvestmentType,
		Name:           name,
		Amount:         acc.Amount,
		CurrentValue:   acc.CurrentValue,
		ProfitRate:     acc.ProfitRate,
		HalalCertified: acc.HalalCertified,
		RiskRating:     acc.RiskRating,
		CreatedAt:      acc.CreatedAt,
	}
}
