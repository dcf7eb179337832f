package postgresql

import (
	"context"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type compensationRepositoryImpl struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) employee.CompensationRepository {
	return &compensationRepositoryImpl{db: db}
}

func (r *compensationRepositoryImpl) GetPrimaryActive(ctx context.Context, employeeID string, companyID string) (employee.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, amount, pay_frequency,
			   is_primary, is_active, effective_date, end_date,
			   created_at, updated_at
		FROM employee_compensations
		WHERE employee_id = $1 AND company_id = $2
		  AND is_primary = TRUE AND is_active = TRUE
		ORDER BY effective_date DESC
		LIMIT 1
	`

	var c employee.Compensation
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&c.ID, &c.CompanyID, &c.EmployeeID, &c.Amount, &c.PayFrequency,
		&c.IsPrimary, &c.IsActive, &c.EffectiveDate, &c.EndDate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Compensation{}, employee.ErrCompensationNotFound
		}
		return employee.Compensation{}, err
	}

	return c, nil
}
