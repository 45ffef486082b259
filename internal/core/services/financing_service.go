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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// minimumCreditScore is the approval gate applied to every financing application.
const minimumCreditScore = 650

// financingLimits caps the requested amount per financing type, in MYR.
var financingLimits = map[string]decimal.Decimal{
	"personal":  decimal.NewFromInt(100000),
	"sme":       decimal.NewFromInt(50000),
	"education": decimal.NewFromInt(75000),
}

// financingService gates and persists Shariah financing applications.
type financingService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	creditBureau    portsclients.CreditBureau
}

// NewFinancingService creates a new financing application service.
func NewFinancingService(applicationRepo portsrepo.ApplicationRepositoryFacade, creditBureau portsclients.CreditBureau) *financingService {
	return &financingService{
		applicationRepo: applicationRepo,
		creditBureau:    creditBureau,
	}
}

// SubmitApplication validates the per-type cap and the credit gate, computes
// the amortized monthly payment and persists a PENDING application. Nothing is
// persisted when any check fails.
func (s *financingService) SubmitApplication(ctx context.Context, req dto.SubmitFinancingRequest, userID string) (*models.FinancingApplication, error) {
	limit, ok := financingLimits[req.FinancingType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown financing type %q", apperrors.ErrValidation, req.FinancingType)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if req.Amount.GreaterThan(limit) {
		return nil, fmt.Errorf("%w: maximum financing amount for %s is RM%s", apperrors.ErrValidation, req.FinancingType, limit)
	}
	if req.TermMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be at least one month", apperrors.ErrValidation)
	}
	if !req.ProfitRate.IsPositive() {
		return nil, fmt.Errorf("%w: profit rate must be positive", apperrors.ErrValidation)
	}

	report, err := s.checkScore(ctx, userID)
	if err != nil {
		return nil, err
	}
	if report.Score < minimumCreditScore {
		return nil, fmt.Errorf("%w: score %d", apperrors.ErrCreditScoreTooLow, report.Score)
	}

	monthlyPayment := amortizedMonthlyPayment(req.Amount, req.ProfitRate, req.TermMonths)

	now := time.Now()
	app := models.FinancingApplication{
		ApplicationID:       uuid.NewString(),
		UserID:              userID,
		FinancingType:       req.FinancingType,
		Amount:              req.Amount,
		TermMonths:          req.TermMonths,
		ProfitRate:          req.ProfitRate,
		Purpose:             req.Purpose,
		ShariahContractType: req.ShariahContractType,
		TakafulIncluded:     req.TakafulIncluded,
		MonthlyPayment:      monthlyPayment,
		CreditScore:         report.Score,
		Status:              models.ApplicationPending,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.applicationRepo.SaveFinancingApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to save financing application: %w", err)
	}
	return &app, nil
}

// checkScore performs the bureau lookup with a single retry. The lookup is an
// idempotent read, so one retry on upstream failure is safe.
func (s *financingService) checkScore(ctx context.Context, userID string) (portsclients.CreditReport, error) {
	report, err := s.creditBureau.CheckScore(ctx, userID)
	if err != nil {
		report, err = s.creditBureau.CheckScore(ctx, userID)
	}
	if err != nil {
		return portsclients.CreditReport{}, fmt.Errorf("%w: credit bureau: %s", apperrors.ErrUpstreamFailure, err)
	}
	return report, nil
}

// amortizedMonthlyPayment computes amount * r * (1+r)^n / ((1+r)^n - 1) with
// r the monthly profit rate, rounded to 2 decimal places.
func amortizedMonthlyPayment(amount, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	months := decimal.NewFromInt(int64(termMonths))
	monthlyRate := annualRatePercent.Div(decimal.NewFromInt(1200))
	if monthlyRate.IsZero() {
		return amount.Div(months).Round(2)
	}
	one := decimal.NewFromInt(1)
	factor := one.Add(monthlyRate).Pow(months)
	return amount.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one)).Round(2)
}
