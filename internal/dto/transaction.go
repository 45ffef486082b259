package dto

import (
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   string          `json:"description"`
	ReferenceID   string          `json:"referenceID"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a models.Transaction to its DTO.
func ToTransactionResponse(txn *models.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		Description:   txn.Description,
		ReferenceID:   txn.ReferenceID,
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []models.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
