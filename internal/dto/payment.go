package dto

import (
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/shopspring/decimal"
)

// PayZakatRequest defines the input for the payment confirmation endpoint.
// SessionToken is the handle issued with the calculation; the amount and
// currency it carries are authoritative. Amount and Currency may be echoed by
// clients using the legacy wire shape and are cross-checked against the
// session, never trusted on their own.
type PayZakatRequest struct {
	SessionToken string          `json:"sessionToken" binding:"required"`
	CharityID    string          `json:"charityId" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

// PayZakatResponse mirrors the public payment wire format. TransactionHash is
// the opaque settlement reference returned by the gateway collaborator.
type PayZakatResponse struct {
	PaymentID           string    `json:"paymentId"`
	Status              string    `json:"status"` // "completed" | "pending" | "failed"
	TransactionHash     string    `json:"transactionHash"`
	ZakatCertificateURL string    `json:"zakatCertificateUrl"`
	Timestamp           time.Time `json:"timestamp"`
}

// ToPayZakatResponse converts a payment record to its wire representation.
func ToPayZakatResponse(p *models.ZakatPayment) PayZakatResponse {
	ts := p.CreatedAt
	if p.CompletedAt != nil {
		ts = *p.CompletedAt
	}
	return PayZakatResponse{
		PaymentID:           p.PaymentID,
		Status:              paymentWireStatus(p.Status),
		TransactionHash:     p.SettlementRef,
		ZakatCertificateURL: p.CertificateURL,
		Timestamp:           ts,
	}
}

func paymentWireStatus(s models.PaymentState) string {
	switch s {
	case models.PaymentCompleted:
		return "completed"
	case models.PaymentFailed:
		return "failed"
	default:
		return "pending"
	}
}
