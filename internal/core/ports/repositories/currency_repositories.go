package repositories

import (
	"context"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// CurrencyReader defines read operations for currency reference data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a currency profile by its code.
	// Returns apperrors.ErrNotFound when the code is not supported.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error)

	// ListCurrencies retrieves all supported currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]models.Currency, error)

	// FindEffectiveNisab returns the latest revision whose effective date is
	// at or before the given instant, or apperrors.ErrNotFound when the
	// currency has no revisions.
	FindEffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (*models.NisabRevision, error)
}

// CurrencyWriter defines write operations for currency reference data.
type CurrencyWriter interface {
	// SaveNisabRevision appends a revision. When applyNow is true the
	// currency row's current threshold is updated in the same transaction.
	SaveNisabRevision(ctx context.Context, revision models.NisabRevision, applyNow bool) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
