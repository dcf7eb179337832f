package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
)

type employeePayrollRepositoryImpl struct {
	db *database.DB
}

func NewEmployeePayrollRepository(db *database.DB) payroll.EmployeePayrollRepository {
	return &employeePayrollRepositoryImpl{db: db}
}

func (r *employeePayrollRepositoryImpl) GetFinalizedByPeriods(ctx context.Context, companyID string, payPeriodIDs []string) ([]payroll.EmployeePayroll, error) {
	if len(payPeriodIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, pay_period_id,
			   pay_year, pay_cycle_number, employee_status, status,
			   gross_pay, net_pay, calculation_details,
			   created_at, updated_at
		FROM employee_payrolls
		WHERE company_id = $1
		  AND pay_period_id = ANY($2)
		  AND status = ANY($3)
		ORDER BY pay_period_id, employee_id
	`

	statuses := make([]string, 0, len(payroll.FinalizedStatuses))
	for _, s := range payroll.FinalizedStatuses {
		statuses = append(statuses, string(s))
	}

	rows, err := q.Query(ctx, query, companyID, payPeriodIDs, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.EmployeePayroll
	for rows.Next() {
		var ep payroll.EmployeePayroll
		err := rows.Scan(
			&ep.ID, &ep.CompanyID, &ep.EmployeeID, &ep.PayPeriodID,
			&ep.PayYear, &ep.PayCycleNumber, &ep.EmployeeStatus, &ep.Status,
			&ep.GrossPay, &ep.NetPay, &ep.CalculationDetails,
			&ep.CreatedAt, &ep.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee payroll: %w", err)
		}
		records = append(records, ep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
