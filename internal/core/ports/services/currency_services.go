package services

import (
	"context"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency reference data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a currency profile. Returns
	// apperrors.ErrUnknownCurrency when the code is not supported.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]models.Currency, error)

	// EffectiveNisab resolves the nisab threshold in force at the given
	// instant, honoring accepted revisions whose effective date has passed.
	EffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (decimal.Decimal, error)
}

// NisabWriterSvc defines the out-of-band nisab update operation.
type NisabWriterSvc interface {
	// ApplyNisabUpdate validates and records a set of nisab revisions,
	// updating the effective thresholds for revisions already in effect.
	// Returns the currency codes that were updated.
	ApplyNisabUpdate(ctx context.Context, req dto.NisabUpdateRequest, actorID string) ([]string, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	NisabWriterSvc
}
