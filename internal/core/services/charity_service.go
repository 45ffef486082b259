package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	portsrepo "github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
)

// charityService exposes the static charity directory.
type charityService struct {
	charityRepo portsrepo.CharityRepositoryFacade
}

// NewCharityService creates a new charity directory service.
func NewCharityService(charityRepo portsrepo.CharityRepositoryFacade) *charityService {
	return &charityService{charityRepo: charityRepo}
}

// ListByCurrency retrieves organizations accepting the given currency.
// No organizations for a currency is a valid, empty result; the payment flow
// handles it by refusing selection, not by erroring here.
func (s *charityService) ListByCurrency(ctx context.Context, currencyCode string) ([]models.CharityOrganization, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	orgs, err := s.charityRepo.ListOrganizationsByCurrency(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations for %s: %w", code, err)
	}
	if orgs == nil {
		return []models.CharityOrganization{}, nil
	}
	return orgs, nil
}

// GetByID retrieves one organization.
func (s *charityService) GetByID(ctx context.Context, orgID string) (*models.CharityOrganization, error) {
	if orgID == "" {
		return nil, apperrors.ErrOrganizationRequired
	}
	org, err := s.charityRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownOrganization, orgID)
		}
		return nil, fmt.Errorf("failed to get organization %s: %w", orgID, err)
	}
	return org, nil
}
