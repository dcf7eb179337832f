package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payPeriodRepositoryImpl struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payroll.PayPeriodRepository {
	return &payPeriodRepositoryImpl{db: db}
}

func (r *payPeriodRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pay_group_id, start_date, end_date,
			   pay_year, cycle_number, status, created_at, updated_at
		FROM pay_periods
		WHERE id = $1 AND company_id = $2
	`

	var p payroll.PayPeriod
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.PayGroupID, &p.StartDate, &p.EndDate,
		&p.PayYear, &p.CycleNumber, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayPeriod{}, payroll.ErrPayPeriodNotFound
		}
		return payroll.PayPeriod{}, err
	}

	return p, nil
}

func (r *payPeriodRepositoryImpl) GetInRange(ctx context.Context, companyID, payGroupID string, start, end time.Time) ([]payroll.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pay_group_id, start_date, end_date,
			   pay_year, cycle_number, status, created_at, updated_at
		FROM pay_periods
		WHERE company_id = $1 AND pay_group_id = $2
		  AND start_date >= $3 AND end_date <= $4
		ORDER BY start_date ASC
	`

	rows, err := q.Query(ctx, query, companyID, payGroupID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayPeriod
	for rows.Next() {
		var p payroll.PayPeriod
		err := rows.Scan(
			&p.ID, &p.CompanyID, &p.PayGroupID, &p.StartDate, &p.EndDate,
			&p.PayYear, &p.CycleNumber, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return periods, nil
}
