package models

// CharityOrganization is a static directory entry for an organization eligible
// to receive zakat payments. One organization accepts exactly one currency.
type CharityOrganization struct {
	OrgID        string `json:"orgID"` // Primary Key, stable (e.g., "JAKIM-001")
	Name         string `json:"name"`
	Code         string `json:"code"` // short code, e.g., "JAKIM"
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}
