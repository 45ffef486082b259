package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType categorizes ledger transactions.
type TransactionType string

const (
	TransactionZakat      TransactionType = "zakat"
	TransactionInvestment TransactionType = "investment"
)

// TransactionStatus is the settlement state of a ledger transaction.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
)

// Transaction is one append-only ledger entry recorded when a zakat payment
// completes or an investment is opened.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	UserID        string            `json:"userID"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	CurrencyCode  string            `json:"currencyCode"`
	Description   string            `json:"description"`
	ReferenceID   string            `json:"referenceID"` // e.g., payment ID or "INV-..." reference
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
