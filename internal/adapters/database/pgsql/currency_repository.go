package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCurrencyRepository creates a new repository for currency reference data.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) repositories.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{pool: pool}
}

// FindCurrencyByCode retrieves a currency profile by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*models.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, nisab_threshold, token_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var currency models.Currency
	err := r.pool.QueryRow(ctx, query, currencyCode).Scan(
		&currency.CurrencyCode,
		&currency.Name,
		&currency.Symbol,
		&currency.NisabThreshold,
		&currency.TokenRate,
		&currency.CreatedAt,
		&currency.CreatedBy,
		&currency.LastUpdatedAt,
		&currency.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	return &currency, nil
}

// ListCurrencies retrieves all supported currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, nisab_threshold, token_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.Symbol,
			&currency.NisabThreshold,
			&currency.TokenRate,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}

// FindEffectiveNisab returns the newest revision effective at or before the
// given instant.
func (r *PgxCurrencyRepository) FindEffectiveNisab(ctx context.Context, currencyCode string, at time.Time) (*models.NisabRevision, error) {
	query := `
		SELECT revision_id, currency_code, nisab_threshold, effective_date, created_at, created_by, last_updated_at, last_updated_by
		FROM nisab_revisions
		WHERE currency_code = $1 AND effective_date <= $2
		ORDER BY effective_date DESC, created_at DESC
		LIMIT 1;
	`
	var revision models.NisabRevision
	err := r.pool.QueryRow(ctx, query, currencyCode, at).Scan(
		&revision.RevisionID,
		&revision.CurrencyCode,
		&revision.NisabThreshold,
		&revision.EffectiveDate,
		&revision.CreatedAt,
		&revision.CreatedBy,
		&revision.LastUpdatedAt,
		&revision.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find effective nisab for %s: %w", currencyCode, err)
	}

	return &revision, nil
}

// SaveNisabRevision appends a revision and, when applyNow is set, updates the
// currency's current threshold in the same transaction.
func (r *PgxCurrencyRepository) SaveNisabRevision(ctx context.Context, revision models.NisabRevision, applyNow bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	insertQuery := `
		INSERT INTO nisab_revisions (revision_id, currency_code, nisab_threshold, effective_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertQuery,
		revision.RevisionID,
		revision.CurrencyCode,
		revision.NisabThreshold,
		revision.EffectiveDate,
		revision.CreatedAt,
		revision.CreatedBy,
		revision.LastUpdatedAt,
		revision.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert nisab revision for %s: %w", revision.CurrencyCode, err)
	}

	if applyNow {
		updateQuery := `
			UPDATE currencies
			SET nisab_threshold = $2, last_updated_at = $3, last_updated_by = $4
			WHERE currency_code = $1;
		`
		tag, err := tx.Exec(ctx, updateQuery,
			revision.CurrencyCode,
			revision.NisabThreshold,
			revision.LastUpdatedAt,
			revision.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to apply nisab threshold for %s: %w", revision.CurrencyCode, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit nisab revision for %s: %w", revision.CurrencyCode, err)
	}
	return nil
}
