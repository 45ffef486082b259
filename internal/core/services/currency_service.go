package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// currencyService is the single authoritative owner of currency reference
// data. Every other component resolves nisab thresholds, token rates and
// symbols through it; nothing else holds private copies.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *currencyService {
	return &currencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByCode retrieves a currency profile. An unknown code is a
// defined error, never a zero-threshold default.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all supported currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []models.Currency{}, nil
	}
	return currencies, nil
}

// ApplyNisabUpdate records one revision per currency in the update and updates
// the effective threshold for revisions whose effective date has passed.
// Every currency in the update must already be supported; the whole update is
// rejected on the first unknown code so a partial table never results.
func (s *currencyService) ApplyNisabUpdate(ctx context.Context, req dto.NisabUpdateRequest, actorID string) ([]string, error) {
	if len(req.Values) == 0 {
		return nil, fmt.Errorf("%w: no nisab values provided", apperrors.ErrValidation)
	}
	if req.EffectiveDate.IsZero() {
		return nil, fmt.Errorf("%w: effective date is required", apperrors.ErrValidation)
	}

	// Re-key the payload by normalized code up front. Values must be read from
	// this map only; indexing req.Values with a normalized key would silently
	// yield a zero threshold for lowercase payload keys.
	values := make(map[string]decimal.Decimal, len(req.Values))
	codes := make([]string, 0, len(req.Values))
	for code, value := range req.Values {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if _, exists := values[normalized]; exists {
			return nil, fmt.Errorf("%w: duplicate nisab value for %s", apperrors.ErrValidation, normalized)
		}
		values[normalized] = value
		codes = append(codes, normalized)
	}
	// Deterministic order for persistence and the acknowledgement payload.
	sort.Strings(codes)

	now := time.Now()
	applyNow := !req.EffectiveDate.After(now)

	// Validate everything before writing anything.
	for _, code := range codes {
		if values[code].IsNegative() {
			return nil, fmt.Errorf("%w: nisab threshold for %s must not be negative", apperrors.ErrValidation, code)
		}
		if _, err := s.GetCurrencyByCode(ctx, code); err != nil {
			return nil, err
		}
	}

	updated := make([]string, 0, len(codes))
	for _, code := range codes {
		revision := models.NisabRevision{
			RevisionID:     uuid.NewString(),
			CurrencyCode:   code,
			NisabThreshold: values[code],
			EffectiveDate:  req.EffectiveDate,
			AuditFields: models.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
		if err := s.currencyRepo.SaveNisabRevision(ctx, revision, applyNow); err != nil {
			return nil, fmt.Errorf("failed to save nisab revision for %s: %w", code, err)
		}
		updated = append(updated, code)
	}

	return updated, nil
}

// EffectiveNisab resolves the threshold in force at the given instant,
// falling back to the currency row's current value when no revision applies.
func (s *currencyService) EffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (decimal.Decimal, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return decimal.Zero, err
	}

	revision, err := s.currencyRepo.FindEffectiveNisab(ctx, currency.CurrencyCode, at)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return currency.NisabThreshold, nil
		}
		return decimal.Zero, fmt.Errorf("failed to resolve effective nisab for %s: %w", currency.CurrencyCode, err)
	}
	return revision.NisabThreshold, nil
}
