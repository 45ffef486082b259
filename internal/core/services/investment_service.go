package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsclients "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/clients"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/ZakatAsean/zakat_platform_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// investmentMinimums is the minimum opening amount per product type, in MYR.
var investmentMinimums = map[string]decimal.Decimal{
	"asb":           decimal.NewFromInt(10),
	"sukuk":         decimal.NewFromInt(1000),
	"robo_advisory": decimal.NewFromInt(100),
	"gold":          decimal.NewFromInt(50),
}

// investmentService validates and opens investment accounts.
type investmentService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	marketData      portsclients.MarketData
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	marketData portsclients.MarketData,
) *investmentService {
	return &investmentService{
		applicationRepo: applicationRepo,
		transactionRepo: transactionRepo,
		marketData:      marketData,
	}
}

// CreateInvestment validates the per-type minimum, resolves product details
// and persists the account plus a completed ledger transaction.
func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*models.InvestmentAccount, string, error) {
	minimum, ok := investmentMinimums[req.InvestmentType]
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown investment type %q", apperrors.ErrValidation, req.InvestmentType)
	}
	if req.Amount.LessThan(minimum) {
		return nil, "", fmt.Errorf("%w: minimum investment for %s is RM%s", apperrors.ErrValidation, req.InvestmentType, minimum)
	}

	details, err := s.investmentDetails(ctx, req.InvestmentType)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	acc := models.InvestmentAccount{
		InvestmentID:   uuid.NewString(),
		UserID:         userID,
		InvestmentType: req.InvestmentType,
		Amount:         req.Amount,
		CurrentValue:   req.Amount,
		ProfitRate:     details.ProfitRate,
		HalalCertified: details.HalalCertified,
		RiskRating:     details.RiskRating,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.applicationRepo.SaveInvestmentAccount(ctx, acc); err != nil {
		return nil, "", fmt.Errorf("failed to save investment account: %w", err)
	}

	referenceID, err := utils.GenerateInvestmentReference(now)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate investment reference: %w", err)
	}
	if err := s.transactionRepo.SaveTransaction(ctx, models.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          models.TransactionInvestment,
		Amount:        req.Amount,
		CurrencyCode:  "MYR",
		Description:   fmt.Sprintf("Investment in %s", details.Name),
		ReferenceID:   referenceID,
		Status:        models.TransactionCompleted,
		CreatedAt:     now,
	}); err != nil {
		return nil, "", fmt.Errorf("failed to record investment transaction: %w", err)
	}

	return &acc, details.Name, nil
}

// investmentDetails performs the market data lookup with a single retry; it is
// an idempotent read.
func (s *investmentService) investmentDetails(ctx context.Context, investmentType string) (portsclients.InvestmentDetails, error) {
	details, err := s.marketData.InvestmentDetails(ctx, investmentType)
	if err != nil {
		details, err = s.marketData.InvestmentDetails(ctx, investmentType)
	}
	if err != nil {
		return portsclients.InvestmentDetails{}, fmt.Errorf("%w: market data: %s", apperrors.ErrUpstreamFailure, err)
	}
	return details, nil
}
