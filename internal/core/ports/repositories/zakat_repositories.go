package repositories

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// CalculationReader defines read operations for zakat calculations.
type CalculationReader interface {
	// FindCalculationByID retrieves one calculation.
	FindCalculationByID(ctx context.Context, calculationID string) (*models.ZakatCalculation, error)

	// ListCalculationsByUser retrieves a user's calculations, newest first.
	ListCalculationsByUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error)
}

// CalculationWriter defines write operations for zakat calculations. The
// payment status flip rides inside CompletePayment; it is the only permitted
// mutation of a persisted calculation.
type CalculationWriter interface {
	// SaveCalculation persists a new calculation record.
	SaveCalculation(ctx context.Context, calc models.ZakatCalculation) error
}

// PaymentWriter defines write operations for payment attempts. Terminal
// transitions are conditional on the row still being in PROCESSING so that
// exactly one of two concurrent confirmations wins.
type PaymentWriter interface {
	// CreatePayment inserts a new PROCESSING payment row. Returns
	// apperrors.ErrDuplicate when a non-failed payment already exists for the
	// calculation.
	CreatePayment(ctx context.Context, payment models.ZakatPayment) error

	// CompletePayment transitions PROCESSING -> COMPLETED and, in the same
	// transaction, marks the calculation paid and appends the ledger entry.
	// The payment must carry its settlement reference, certificate URL and
	// completion time. Returns false when the row was no longer in PROCESSING
	// (another confirmation won); nothing else is written in that case.
	CompletePayment(ctx context.Context, payment models.ZakatPayment, ledger models.Transaction) (bool, error)

	// FailPayment transitions PROCESSING -> FAILED with the given cause.
	// Returns false when the row was no longer in PROCESSING.
	FailPayment(ctx context.Context, paymentID, cause string) (bool, error)
}

// PaymentReader defines read operations for payment attempts.
type PaymentReader interface {
	// FindPaymentByID retrieves one payment attempt.
	FindPaymentByID(ctx context.Context, paymentID string) (*models.ZakatPayment, error)

	// FindActivePaymentByCalculation retrieves the calculation's non-failed
	// payment (PROCESSING or COMPLETED), or apperrors.ErrNotFound.
	FindActivePaymentByCalculation(ctx context.Context, calculationID string) (*models.ZakatPayment, error)
}

// ZakatRepositoryFacade combines calculation and payment repository interfaces.
type ZakatRepositoryFacade interface {
	CalculationReader
	CalculationWriter
	PaymentReader
	PaymentWriter
}
