package repositories

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// TransactionWriter defines write operations for the append-only ledger.
type TransactionWriter interface {
	// SaveTransaction appends one ledger entry.
	SaveTransaction(ctx context.Context, txn models.Transaction) error
}

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	// ListTransactionsByUser retrieves a user's ledger entries, newest first.
	ListTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)
}

// TransactionRepositoryFacade combines ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
