package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PgxZakatRepository struct {
	pool *pgxpool.Pool
}

// NewPgxZakatRepository creates a new repository for zakat calculations and
// payment attempts.
func NewPgxZakatRepository(pool *pgxpool.Pool) repositories.ZakatRepositoryFacade {
	return &PgxZakatRepository{pool: pool}
}

// SaveCalculation persists a new calculation record.
func (r *PgxZakatRepository) SaveCalculation(ctx context.Context, calc models.ZakatCalculation) error {
	query := `
		INSERT INTO zakat_calculations (calculation_id, user_id, country, currency_code, assets, debts, net_assets, nisab_threshold, nisab_status, zakat_amount, zakat_tokens, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		calc.CalculationID,
		calc.UserID,
		calc.Country,
		calc.CurrencyCode,
		calc.Assets,
		calc.Debts,
		calc.NetAssets,
		calc.NisabThreshold,
		calc.NisabStatus,
		calc.ZakatAmount,
		calc.ZakatTokens,
		calc.PaymentStatus,
		calc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation %s: %w", calc.CalculationID, err)
	}
	return nil
}

// FindCalculationByID retrieves one calculation.
func (r *PgxZakatRepository) FindCalculationByID(ctx context.Context, calculationID string) (*models.ZakatCalculation, error) {
	query := `
		SELECT calculation_id, user_id, country, currency_code, assets, debts, net_assets, nisab_threshold, nisab_status, zakat_amount, zakat_tokens, payment_status, created_at
		FROM zakat_calculations
		WHERE calculation_id = $1;
	`
	var calc models.ZakatCalculation
	err := r.pool.QueryRow(ctx, query, calculationID).Scan(
		&calc.CalculationID,
		&calc.UserID,
		&calc.Country,
		&calc.CurrencyCode,
		&calc.Assets,
		&calc.Debts,
		&calc.NetAssets,
		&calc.NisabThreshold,
		&calc.NisabStatus,
		&calc.ZakatAmount,
		&calc.ZakatTokens,
		&calc.PaymentStatus,
		&calc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find calculation %s: %w", calculationID, err)
	}

	return &calc, nil
}

// ListCalculationsByUser retrieves a user's calculations, newest first.
func (r *PgxZakatRepository) ListCalculationsByUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error) {
	query := `
		SELECT calculation_id, user_id, country, currency_code, assets, debts, net_assets, nisab_threshold, nisab_status, zakat_amount, zakat_tokens, payment_status, created_at
		FROM zakat_calculations
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations for user %s: %w", userID, err)
	}
	defer rows.Close()

	calcs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ZakatCalculation, error) {
		var calc models.ZakatCalculation
		err := row.Scan(
			&calc.CalculationID,
			&calc.UserID,
			&calc.Country,
			&calc.CurrencyCode,
			&calc.Assets,
			&calc.Debts,
			&calc.NetAssets,
			&calc.NisabThreshold,
			&calc.NisabStatus,
			&calc.ZakatAmount,
			&calc.ZakatTokens,
			&calc.PaymentStatus,
			&calc.CreatedAt,
		)
		return calc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculations: %w", err)
	}

	return calcs, nil
}

// CreatePayment inserts a new PROCESSING payment row. A partial unique index
// on calculation_id over non-failed rows enforces at most one active attempt.
func (r *PgxZakatRepository) CreatePayment(ctx context.Context, payment models.ZakatPayment) error {
	query := `
		INSERT INTO zakat_payments (payment_id, calculation_id, user_id, org_id, amount, currency_code, status, settlement_ref, certificate_url, failure_cause, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		payment.PaymentID,
		payment.CalculationID,
		payment.UserID,
		payment.OrgID,
		payment.Amount,
		payment.CurrencyCode,
		payment.Status,
		payment.SettlementRef,
		payment.CertificateURL,
		payment.FailureCause,
		payment.CreatedAt,
		payment.CompletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// CompletePayment transitions PROCESSING -> COMPLETED, marks the calculation
// paid and appends the ledger entry, all in one transaction. The WHERE clause
// on the current status makes exactly one of two concurrent confirmations win;
// the loser's transaction rolls back with no rows touched. A partial
// completion (payment COMPLETED without ledger entry or paid flag) can never
// be observed.
func (r *PgxZakatRepository) CompletePayment(ctx context.Context, payment models.ZakatPayment, ledger models.Transaction) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	updateQuery := `
		UPDATE zakat_payments
		SET status = $2, settlement_ref = $3, certificate_url = $4, completed_at = $5
		WHERE payment_id = $1 AND status = $6;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		payment.PaymentID,
		models.PaymentCompleted,
		payment.SettlementRef,
		payment.CertificateURL,
		payment.CompletedAt,
		models.PaymentProcessing,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete payment %s: %w", payment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	calcQuery := `
		UPDATE zakat_calculations
		SET payment_status = $2
		WHERE calculation_id = $1;
	`
	if _, err := tx.Exec(ctx, calcQuery, payment.CalculationID, models.CalculationPaid); err != nil {
		return false, fmt.Errorf("failed to mark calculation %s paid: %w", payment.CalculationID, err)
	}

	if err := insertTransaction(ctx, tx, ledger); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit payment completion %s: %w", payment.PaymentID, err)
	}
	return true, nil
}

// FailPayment transitions PROCESSING -> FAILED with the given cause.
func (r *PgxZakatRepository) FailPayment(ctx context.Context, paymentID, cause string) (bool, error) {
	query := `
		UPDATE zakat_payments
		SET status = $2, failure_cause = $3
		WHERE payment_id = $1 AND status = $4;
	`
	tag, err := r.pool.Exec(ctx, query,
		paymentID,
		models.PaymentFailed,
		cause,
		models.PaymentProcessing,
	)
	if err != nil {
		return false, fmt.Errorf("failed to fail payment %s: %w", paymentID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// FindPaymentByID retrieves one payment attempt.
func (r *PgxZakatRepository) FindPaymentByID(ctx context.Context, paymentID string) (*models.ZakatPayment, error) {
	query := `
		SELECT payment_id, calculation_id, user_id, org_id, amount, currency_code, status, settlement_ref, certificate_url, failure_cause, created_at, completed_at
		FROM zakat_payments
		WHERE payment_id = $1;
	`
	return r.scanPayment(r.pool.QueryRow(ctx, query, paymentID), paymentID)
}

// FindActivePaymentByCalculation retrieves the calculation's non-failed
// payment attempt.
func (r *PgxZakatRepository) FindActivePaymentByCalculation(ctx context.Context, calculationID string) (*models.ZakatPayment, error) {
	query := `
		SELECT payment_id, calculation_id, user_id, org_id, amount, currency_code, status, settlement_ref, certificate_url, failure_cause, created_at, completed_at
		FROM zakat_payments
		WHERE calculation_id = $1 AND status <> $2;
	`
	return r.scanPayment(r.pool.QueryRow(ctx, query, calculationID, models.PaymentFailed), calculationID)
}

func (r *PgxZakatRepository) scanPayment(row pgx.Row, id string) (*models.ZakatPayment, error) {
	var payment models.ZakatPayment
	err := row.Scan(
		&payment.PaymentID,
		&payment.CalculationID,
		&payment.UserID,
		&payment.OrgID,
		&payment.Amount,
		&payment.CurrencyCode,
		&payment.Status,
		&payment.SettlementRef,
		&payment.CertificateURL,
		&payment.FailureCause,
		&payment.CreatedAt,
		&payment.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment for %s: %w", id, err)
	}
	return &payment, nil
}
