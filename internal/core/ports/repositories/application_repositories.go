package repositories

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// FinancingWriter defines write operations for financing applications.
type FinancingWriter interface {
	// SaveFinancingApplication persists a new application with PENDING status.
	SaveFinancingApplication(ctx context.Context, app models.FinancingApplication) error
}

// InvestmentWriter defines write operations for investment accounts.
type InvestmentWriter interface {
	// SaveInvestmentAccount persists a new investment account.
	SaveInvestmentAccount(ctx context.Context, acc models.InvestmentAccount) error
}

// ApplicationRepositoryFacade combines financing and investment repository interfaces.
type ApplicationRepositoryFacade interface {
	FinancingWriter
	InvestmentWriter
}
