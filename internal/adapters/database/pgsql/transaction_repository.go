package pgsql

import (
	"context"
	"fmt"

	"github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// execer is the subset of pgx satisfied by both the pool and a transaction,
// so ledger inserts can ride inside another repository's transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for the ledger.
func NewPgxTransactionRepository(pool *pgxpool.Pool) repositories.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

// insertTransaction appends one ledger entry via the given executor.
func insertTransaction(ctx context.Context, db execer, txn models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, amount, currency_code, description, reference_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := db.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.Type,
		txn.Amount,
		txn.CurrencyCode,
		txn.Description,
		txn.ReferenceID,
		txn.Status,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// SaveTransaction appends one ledger entry. Entries are never updated.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn models.Transaction) error {
	return insertTransaction(ctx, r.pool, txn)
}

// ListTransactionsByUser retrieves a user's ledger entries, newest first.
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, type, amount, currency_code, description, reference_id, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.UserID,
			&txn.Type,
			&txn.Amount,
			&txn.CurrencyCode,
			&txn.Description,
			&txn.ReferenceID,
			&txn.Status,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return txns, nil
}
