package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	portssvc "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/services"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// zakatRate is the fixed obligation rate: 2.5% of net qualifying assets.
var zakatRate = decimal.NewFromFloat(0.025)

// zakatService computes zakat obligations. The arithmetic is all
// shopspring/decimal so that inputs exactly at the nisab threshold classify as
// above it regardless of currency magnitude (VND thresholds run to nine
// digits).
type zakatService struct {
	currencyService portssvc.CurrencyReaderSvc
	zakatRepo       portsrepo.ZakatRepositoryFacade
}

// NewZakatService creates a new zakat calculation service.
func NewZakatService(currencyService portssvc.CurrencyReaderSvc, zakatRepo portsrepo.ZakatRepositoryFacade) *zakatService {
	return &zakatService{
		currencyService: currencyService,
		zakatRepo:       zakatRepo,
	}
}

// Calculate computes the zakat obligation for the given inputs. Identical
// inputs always produce identical outputs. When userID is non-empty the
// calculation is persisted as a record owned by that user; anonymous
// calculations are computed without persistence.
func (s *zakatService) Calculate(ctx context.Context, req dto.CalculateZakatRequest, userID string) (*models.ZakatCalculation, error) {
	if req.Country == "" {
		return nil, fmt.Errorf("%w: country is required", apperrors.ErrValidation)
	}
	if req.Assets.IsNegative() {
		return nil, fmt.Errorf("%w: assets must not be negative", apperrors.ErrValidation)
	}
	if req.Debts.IsNegative() {
		return nil, fmt.Errorf("%w: debts must not be negative", apperrors.ErrValidation)
	}

	currency, err := s.currencyService.GetCurrencyByCode(ctx, req.Currency)
	if err != nil {
		return nil, err
	}

	// Resolve through revisions so a future-dated update takes effect on its
	// date without waiting for another webhook delivery.
	nisabThreshold, err := s.currencyService.EffectiveNisab(ctx, currency.CurrencyCode, time.Now())
	if err != nil {
		return nil, err
	}

	// Debts exceeding assets is allowed; it simply yields below-nisab.
	netAssets := req.Assets.Sub(req.Debts)

	status := models.NisabBelow
	zakatAmount := decimal.Zero
	if netAssets.GreaterThanOrEqual(nisabThreshold) {
		status = models.NisabAbove
		zakatAmount = netAssets.Mul(zakatRate)
	}
	zakatTokens := zakatAmount.Mul(currency.TokenRate)

	calc := &models.ZakatCalculation{
		CalculationID:  uuid.NewString(),
		UserID:         userID,
		Country:        req.Country,
		CurrencyCode:   currency.CurrencyCode,
		Assets:         req.Assets,
		Debts:          req.Debts,
		NetAssets:      netAssets,
		NisabThreshold: nisabThreshold,
		NisabStatus:    status,
		ZakatAmount:    zakatAmount,
		ZakatTokens:    zakatTokens,
		PaymentStatus:  models.CalculationUnpaid,
		CreatedAt:      time.Now(),
	}

	if userID != "" {
		if err := s.zakatRepo.SaveCalculation(ctx, *calc); err != nil {
			return nil, fmt.Errorf("failed to save zakat calculation: %w", err)
		}
	}

	return calc, nil
}

// ListCalculationsForUser retrieves the user's calculation history.
func (s *zakatService) ListCalculationsForUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error) {
	calcs, err := s.zakatRepo.ListCalculationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list zakat calculations: %w", err)
	}
	if calcs == nil {
		return []models.ZakatCalculation{}, nil
	}
	return calcs, nil
}
