package dto

import (
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// SubmitFinancingRequest defines the input for a financing application.
type SubmitFinancingRequest struct {
	FinancingType       string          `json:"financingType" binding:"required,oneof=personal sme education"`
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	TermMonths          int             `json:"termMonths" binding:"required,gt=0"`
	ProfitRate          decimal.Decimal `json:"profitRate" binding:"required"`
	Purpose             string          `json:"purpose"`
	ShariahContractType string          `json:"shariahContractType" binding:"required"`
	TakafulIncluded     bool            `json:"takafulIncluded"`
}

// FinancingApplicationResponse defines the data returned for a submitted application.
type FinancingApplicationResponse struct {
	ApplicationID       string          `json:"applicationId"`
	FinancingType       string          `json:"financingType"`
	Amount              decimal.Decimal `json:"amount"`
	TermMonths          int             `json:"termMonths"`
	ProfitRate          decimal.Decimal `json:"profitRate"`
	ShariahContractType string          `json:"shariahContractType"`
	TakafulIncluded     bool            `json:"takafulIncluded"`
	MonthlyPayment      decimal.Decimal `json:"monthlyPayment"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ToFinancingApplicationResponse converts a models.FinancingApplication to its DTO.
func ToFinancingApplicationResponse(app *models.FinancingApplication) FinancingApplicationResponse {
	return FinancingApplicationResponse{
		ApplicationID:       app.ApplicationID,
		FinancingType:       app.FinancingType,
		Amount:              app.Amount,
		TermMonths:          app.TermMonths,
		ProfitRate:          app.ProfitRate,
		ShariahContractType: app.ShariahContractType,
		TakafulIncluded:     app.TakafulIncluded,
		MonthlyPayment:      app.MonthlyPayment,
		Status:              string(app.Status),
		CreatedAt:           app.CreatedAt,
	}
}
