package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTransactionRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTransactionRepository(db *database.DB) leave.TransactionRepository {
	return &leaveTransactionRepositoryImpl{db: db}
}

func (r *leaveTransactionRepositoryImpl) ReplaceForPeriod(ctx context.Context, companyID, employeeID, payPeriodID string, transactions []leave.PayrollTransaction) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM leave_payroll_transactions
			WHERE company_id = $1 AND employee_id = $2 AND pay_period_id = $3
			  AND processed_at IS NULL
		`
		if _, err := tx.Exec(ctx, deleteQuery, companyID, employeeID, payPeriodID); err != nil {
			return fmt.Errorf("failed to delete prior leave transactions: %w", err)
		}

		insertQuery := `
			INSERT INTO leave_payroll_transactions (
				id, company_id, employee_id, pay_period_id, payroll_run_id, leave_request_id,
				transaction_type, leave_days, leave_hours, daily_rate, hourly_rate,
				gross_amount, payment_percentage, net_amount, description,
				created_at
			) VALUES (
				uuidv7(), $1, $2, $3, $4, $5,
				$6, $7, $8, $9, $10,
				$11, $12, $13, $14,
				NOW()
			)
		`

		for _, t := range transactions {
			_, err := tx.Exec(ctx, insertQuery,
				companyID, employeeID, payPeriodID, t.PayrollRunID, t.LeaveRequestID,
				t.Type, t.LeaveDays, t.LeaveHours, t.DailyRate, t.HourlyRate,
				t.GrossAmount, t.PaymentPercentage, t.NetAmount, t.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to insert leave transaction for request %s: %w", t.LeaveRequestID, err)
			}
		}

		return nil
	})
}

func (r *leaveTransactionRepositoryImpl) GetByPayrollRun(ctx context.Context, payrollRunID string, companyID string) ([]leave.PayrollTransaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, pay_period_id, payroll_run_id, leave_request_id,
			   transaction_type, leave_days, leave_hours, daily_rate, hourly_rate,
			   gross_amount, payment_percentage, net_amount, description,
			   processed_at, created_at
		FROM leave_payroll_transactions
		WHERE payroll_run_id = $1 AND company_id = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, payrollRunID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave transactions: %w", err)
	}
	defer rows.Close()

	var transactions []leave.PayrollTransaction
	for rows.Next() {
		var t leave.PayrollTransaction
		err := rows.Scan(
			&t.ID, &t.CompanyID, &t.EmployeeID, &t.PayPeriodID, &t.PayrollRunID, &t.LeaveRequestID,
			&t.Type, &t.LeaveDays, &t.LeaveHours, &t.DailyRate, &t.HourlyRate,
			&t.GrossAmount, &t.PaymentPercentage, &t.NetAmount, &t.Description,
			&t.ProcessedAt, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return transactions, nil
}
