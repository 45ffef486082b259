package services

import (
	"context"
	"fmt"

	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// transactionService exposes read access to the append-only ledger.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new ledger read service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade) *transactionService {
	return &transactionService{transactionRepo: transactionRepo}
}

// ListForUser retrieves the user's ledger entries, newest first.
func (s *transactionService) ListForUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []models.Transaction{}, nil
	}
	return txns, nil
}
