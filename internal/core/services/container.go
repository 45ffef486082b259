package services

import (
	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/platform/config"
)

// ClientProvider holds the external collaborator clients the services depend on.
type ClientProvider struct {
	PaymentGateway portsclients.PaymentGateway
	CreditBureau   portsclients.CreditBureau
	MarketData     portsclients.MarketData
}

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clients ClientProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first: the calculation engine and charity flow resolve
	// reference data through it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Charity = NewCharityService(repos.CharityRepo)
	container.Zakat = NewZakatService(container.Currency, repos.ZakatRepo)
	container.Payment = NewPaymentService(cfg, repos.ZakatRepo, container.Charity, clients.PaymentGateway)
	container.Financing = NewFinancingService(repos.ApplicationRepo, clients.CreditBureau)
	container.Investment = NewInvestmentService(repos.ApplicationRepo, repos.TransactionRepo, clients.MarketData)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.CharitySvcFacade     = (*charityService)(nil)
	_ portssvc.ZakatSvcFacade       = (*zakatService)(nil)
	_ portssvc.PaymentSvcFacade     = (*paymentService)(nil)
	_ portssvc.FinancingSvcFacade   = (*financingService)(nil)
	_ portssvc.InvestmentSvcFacade  = (*investmentService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
)
