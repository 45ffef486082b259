package services

import (
	"context"
	"time"

	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// PaymentSessionSvc issues and redeems the opaque handle that carries a
// computed zakat amount between calculation and payment confirmation.
type PaymentSessionSvc interface {
	// IssueSession produces a signed session token for a calculation with a
	// positive zakat amount. Returns apperrors.ErrNothingToPay for zero
	// amounts.
	IssueSession(ctx context.Context, calc *models.ZakatCalculation) (string, time.Time, error)
}

// PaymentOrchestratorSvc drives organization selection and payment
// confirmation, producing a payment record exactly once per calculation.
type PaymentOrchestratorSvc interface {
	// Confirm redeems a session, validates the chosen organization and runs
	// the gateway call. Confirming an already-completed calculation returns
	// the original payment unchanged.
	Confirm(ctx context.Context, req dto.PayZakatRequest, userID string) (*models.ZakatPayment, error)
}

// PaymentSvcFacade combines all payment service interfaces.
type PaymentSvcFacade interface {
	PaymentSessionSvc
	PaymentOrchestratorSvc
}
