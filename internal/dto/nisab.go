package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NisabUpdateRequest is the payload accepted by the nisab-update webhook.
// Values maps currency code to the new nisab threshold, denominated in that
// currency.
type NisabUpdateRequest struct {
	EffectiveDate time.Time                  `json:"effectiveDate" binding:"required"`
	Values        map[string]decimal.Decimal `json:"values" binding:"required"`
}

// NisabUpdateResponse acknowledges an applied nisab update.
type NisabUpdateResponse struct {
	Success           bool      `json:"success"`
	Message           string    `json:"message"`
	EffectiveDate     time.Time `json:"effectiveDate"`
	UpdatedCurrencies []string  `json:"updatedCurrencies"`
}
