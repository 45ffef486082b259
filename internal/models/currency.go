package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the reference profile for a supported currency. It is the single
// authoritative source for the nisab threshold, the display token rate and the
// symbol; no other component holds private copies of these values.
type Currency struct {
	CurrencyCode   string          `json:"currencyCode"` // Primary Key (e.g., "MYR")
	Name           string          `json:"name"`         // e.g., "Malaysian Ringgit"
	Symbol         string          `json:"symbol"`       // e.g., "RM"
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	TokenRate      decimal.Decimal `json:"tokenRate"` // display-only conversion factor, > 0
	AuditFields
}

// NisabRevision is one accepted nisab update for a currency. Revisions are
// append-only; the effective threshold for a point in time is the latest
// revision whose EffectiveDate has passed.
type NisabRevision struct {
	RevisionID     string          `json:"revisionID"` // Primary Key (UUID)
	CurrencyCode   string          `json:"currencyCode"`
	NisabThreshold decimal.Decimal `json:"nisabThreshold"`
	EffectiveDate  time.Time       `json:"effectiveDate"`
	AuditFields
}
