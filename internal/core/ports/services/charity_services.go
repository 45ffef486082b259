package services

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// CharitySvcFacade defines read access to the charity directory.
type CharitySvcFacade interface {
	// ListByCurrency retrieves organizations accepting the given currency.
	// An empty slice is a valid result.
	ListByCurrency(ctx context.Context, currencyCode string) ([]models.CharityOrganization, error)

	// GetByID retrieves one organization. Returns
	// apperrors.ErrUnknownOrganization when the ID has no directory entry.
	GetByID(ctx context.Context, orgID string) (*models.CharityOrganization, error)
}
