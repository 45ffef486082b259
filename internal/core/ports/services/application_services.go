package services

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// FinancingSvcFacade defines the financing application flow.
type FinancingSvcFacade interface {
	// SubmitApplication validates limits and the credit gate, then persists a
	// PENDING application.
	SubmitApplication(ctx context.Context, req dto.SubmitFinancingRequest, userID string) (*models.FinancingApplication, error)
}

// InvestmentSvcFacade defines the investment account flow.
type InvestmentSvcFacade interface {
	// CreateInvestment validates the per-type minimum, fetches market details
	// and persists the account plus a ledger transaction. The second return
	// value is the product display name from market data.
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*models.InvestmentAccount, string, error)
}

// TransactionSvcFacade defines read access to a user's ledger.
type TransactionSvcFacade interface {
	// ListForUser retrieves the user's ledger entries, newest first.
	ListForUser(ctx context.Context, userID string) ([]models.Transaction, error)
}
