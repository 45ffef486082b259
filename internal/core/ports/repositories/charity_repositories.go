package repositories

import (
	"context"

	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// CharityReader defines read operations for the charity directory.
// The directory is reference data seeded out-of-band; no write port exists.
type CharityReader interface {
	// FindOrganizationByID retrieves one organization.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	FindOrganizationByID(ctx context.Context, orgID string) (*models.CharityOrganization, error)

	// ListOrganizationsByCurrency retrieves organizations accepting the given
	// currency, ordered by ID. An empty slice is a valid result, not an error.
	ListOrganizationsByCurrency(ctx context.Context, currencyCode string) ([]models.CharityOrganization, error)
}

// CharityRepositoryFacade combines all charity-related repository interfaces.
type CharityRepositoryFacade interface {
	CharityReader
}
