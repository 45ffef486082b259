package pgsql

import (
	"context"
	"fmt"

	"github.com/ZakatAsean/zakat_platform_app/internal/core/ports/repositories"
	"github.com/ZakatAsean/zakat_platform_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewPgxApplicationRepository creates a new repository for financing
// applications and investment accounts.
func NewPgxApplicationRepository(pool *pgxpool.Pool) repositories.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{pool: pool}
}

// SaveFinancingApplication persists a new application.
func (r *PgxApplicationRepository) SaveFinancingApplication(ctx context.Context, app models.FinancingApplication) error {
	query := `
		INSERT INTO financing_applications (application_id, user_id, financing_type, amount, term_months, profit_rate, purpose, shariah_contract_type, takaful_included, monthly_payment, credit_score, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		app.ApplicationID,
		app.UserID,
		app.FinancingType,
		app.Amount,
		app.TermMonths,
		app.ProfitRate,
		app.Purpose,
		app.ShariahContractType,
		app.TakafulIncluded,
		app.MonthlyPayment,
		app.CreditScore,
		app.Status,
		app.CreatedAt,
		app.CreatedBy,
		app.LastUpdatedAt,
		app.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save financing application %s: %w", app.ApplicationID, err)
	}
	return nil
}

// SaveInvestmentAccount persists a new investment account.
func (r *PgxApplicationRepository) SaveInvestmentAccount(ctx context.Context, acc models.InvestmentAccount) error {
	query := `
		INSERT INTO investment_accounts (investment_id, user_id, investment_type, amount, current_value, profit_rate, halal_certified, risk_rating, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		acc.InvestmentID,
		acc.UserID,
		acc.InvestmentType,
		acc.Amount,
		acc.CurrentValue,
		acc.ProfitRate,
		acc.HalalCertified,
		acc.RiskRating,
		acc.CreatedAt,
		acc.CreatedBy,
		acc.LastUpdatedAt,
		acc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save investment account %s: %w", acc.InvestmentID, err)
	}
	return nil
}
