package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZakatAsean/zakat_platform_app/internal/apperrors"
	"github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCharityRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCharityRepository creates a new repository for the charity directory.
// The directory is seeded via migrations; this repository only reads.
func NewPgxCharityRepository(pool *pgxpool.Pool) repositories.CharityRepositoryFacade {
	return &PgxCharityRepository{pool: pool}
}

// FindOrganizationByID retrieves one organization.
func (r *PgxCharityRepository) FindOrganizationByID(ctx context.Context, orgID string) (*models.CharityOrganization, error) {
	query := `
		SELECT org_id, name, code, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM charity_organizations
		WHERE org_id = $1;
	`
	var org models.CharityOrganization
	err := r.pool.QueryRow(ctx, query, orgID).Scan(
		&org.OrgID,
		&org.Name,
		&org.Code,
		&org.CurrencyCode,
		&org.CreatedAt,
		&org.CreatedBy,
		&org.LastUpdatedAt,
		&org.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", orgID, err)
	}

	return &org, nil
}

// ListOrganizationsByCurrency retrieves organizations accepting the currency.
func (r *PgxCharityRepository) ListOrganizationsByCurrency(ctx context.Context, currencyCode string) ([]models.CharityOrganization, error) {
	query := `
		SELECT org_id, name, code, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM charity_organizations
		WHERE currency_code = $1
		ORDER BY org_id;
	`
	rows, err := r.pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	orgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CharityOrganization, error) {
		var org models.CharityOrganization
		err := row.Scan(
			&org.OrgID,
			&org.Name,
			&org.Code,
			&org.CurrencyCode,
			&org.CreatedAt,
			&org.CreatedBy,
			&org.LastUpdatedAt,
			&org.LastUpdatedBy,
		)
		return org, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan organizations: %w", err)
	}

	return orgs, nil
}
