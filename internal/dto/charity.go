package dto

import "github.com/ZakatAsean/zakat_platform_app/internal/models"

// CharityOrganizationResponse defines the data returned for a charity organization.
type CharityOrganizationResponse struct {
	OrgID        string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	CurrencyCode string `json:"currency"`
}

// ToCharityOrganizationResponse converts a models.CharityOrganization to its DTO.
func ToCharityOrganizationResponse(org *models.CharityOrganization) CharityOrganizationResponse {
	return CharityOrganizationResponse{
		OrgID:        org.OrgID,
		Name:         org.Name,
		Code:         org.Code,
		CurrencyCode: org.CurrencyCode,
	}
}

// ToListCharityOrganizationResponse converts a slice of organizations.
func ToListCharityOrganizationResponse(orgs []models.CharityOrganization) []CharityOrganizationResponse {
	res := make([]CharityOrganizationResponse, len(orgs))
	for i := range orgs {
		res[i] = ToCharityOrganizationResponse(&orgs[i])
	}
	return res
}
