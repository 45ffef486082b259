package services

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/dto"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// ZakatCalculatorSvc defines the calculation operation. The computation is
// deterministic and side-effect free; persistence happens only when userID is
// non-empty.
type ZakatCalculatorSvc interface {
	// Calculate computes the zakat obligation for the given inputs.
	Calculate(ctx context.Context, req dto.CalculateZakatRequest, userID string) (*models.ZakatCalculation, error)
}

// ZakatHistorySvc defines read access to a user's past calculations.
type ZakatHistorySvc interface {
	// ListCalculationsForUser retrieves the user's calculations, newest first.
	ListCalculationsForUser(ctx context.Context, userID string) ([]models.ZakatCalculation, error)
}

// ZakatSvcFacade combines all zakat calculation service interfaces.
type ZakatSvcFacade interface {
	ZakatCalculatorSvc
	ZakatHistorySvc
}
