package models

import "github.com/shopspring/decimal"

// ApplicationStatus is the submission state of a financing application.
type ApplicationStatus string

const (
	ApplicationPending ApplicationStatus = "PENDING"
)

// FinancingApplication is a Shariah financing request awaiting review.
type FinancingApplication struct {
	ApplicationID       string            `json:"applicationID"` // Primary Key (UUID)
	UserID              string            `json:"userID"`
	FinancingType       string            `json:"financingType"` // personal, sme, education
	Amount              decimal.Decimal   `json:"amount"`
	TermMonths          int               `json:"termMonths"`
	ProfitRate          decimal.Decimal   `json:"profitRate"` // annual percentage
	Purpose             string            `json:"purpose"`
	ShariahContractType string            `json:"shariahContractType"`
	TakafulIncluded     bool              `json:"takafulIncluded"`
	MonthlyPayment      decimal.Decimal   `json:"monthlyPayment"`
	CreditScore         int               `json:"creditScore"`
	Status              ApplicationStatus `json:"status"`
	AuditFields
}

// InvestmentAccount is an opened investment position.
type InvestmentAccount struct {
	InvestmentID   string          `json:"investmentID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`
	InvestmentType string          `json:"investmentType"` // asb, sukuk, robo_advisory, gold
	Amount         decimal.Decimal `json:"amount"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // equals Amount at creation
	ProfitRate     decimal.Decimal `json:"profitRate"`
	HalalCertified bool            `json:"halalCertified"`
	RiskRating     string          `json:"riskRating"`
	AuditFields
}
