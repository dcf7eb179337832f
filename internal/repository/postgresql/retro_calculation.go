package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/retro"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type retroCalculationRepositoryImpl struct {
	db *database.DB
}

func NewRetroCalculationRepository(db *database.DB) retro.CalculationRepository {
	return &retroCalculationRepositoryImpl{db: db}
}

func (r *retroCalculationRepositoryImpl) ReplaceByConfig(ctx context.Context, configID string, companyID string, calculations []retro.Calculation) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Lock the config row so concurrent regenerations serialize.
		var lockedID string
		err := tx.QueryRow(ctx, `
			SELECT id FROM retroactive_pay_configs
			WHERE id = $1 AND company_id = $2
			FOR UPDATE
		`, configID, companyID).Scan(&lockedID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return retro.ErrConfigNotFound
			}
			return fmt.Errorf("failed to lock retro config: %w", err)
		}

		deleteQuery := `
			DELETE FROM retroactive_pay_calculations
			WHERE config_id = $1 AND company_id = $2
		`
		if _, err := tx.Exec(ctx, deleteQuery, configID, companyID); err != nil {
			return fmt.Errorf("failed to delete prior calculations: %w", err)
		}

		insertQuery := `
			INSERT INTO retroactive_pay_calculations (
				id, config_id, company_id, employee_id, pay_period_id,
				pay_year, pay_cycle_number, pay_element_id,
				original_amount, increase_type, increase_value, adjustment_amount,
				employee_status, calculation_date,
				created_at
			) VALUES (
				uuidv7(), $1, $2, $3, $4,
				$5, $6, $7,
				$8, $9, $10, $11,
				$12, $13,
				NOW()
			)
		`

		for _, c := range calculations {
			_, err := tx.Exec(ctx, insertQuery,
				configID, companyID, c.EmployeeID, c.PayPeriodID,
				c.PayYear, c.PayCycleNumber, c.PayElementID,
				c.OriginalAmount, c.IncreaseType, c.IncreaseValue, c.AdjustmentAmount,
				c.EmployeeStatus, c.CalculationDate,
			)
			if err != nil {
				return fmt.Errorf("failed to insert calculation for employee %s: %w", c.EmployeeID, err)
			}
		}

		return nil
	})
}

func (r *retroCalculationRepositoryImpl) HasProcessed(ctx context.Context, configID string, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM retroactive_pay_calculations
			WHERE config_id = $1 AND company_id = $2
			  AND processed_in_run_id IS NOT NULL
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, configID, companyID).Scan(&exists)
	return exists, err
}

func (r *retroCalculationRepositoryImpl) GetPendingByConfigs(ctx context.Context, companyID string, configIDs []string, employeeID string) ([]retro.Calculation, error) {
	if len(configIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, config_id, company_id, employee_id, pay_period_id,
			   pay_year, pay_cycle_number, pay_element_id,
			   original_amount, increase_type, increase_value, adjustment_amount,
			   employee_status, calculation_date,
			   processed_in_run_id, processed_at, created_at
		FROM retroactive_pay_calculations
		WHERE company_id = $1
		  AND config_id = ANY($2)
		  AND processed_in_run_id IS NULL
	`
	args := []interface{}{companyID, configIDs}

	if employeeID != "" {
		query += " AND employee_id = $3"
		args = append(args, employeeID)
	}
	query += " ORDER BY employee_id, pay_element_id, pay_period_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending calculations: %w", err)
	}
	defer rows.Close()

	var calculations []retro.Calculation
	for rows.Next() {
		var c retro.Calculation
		err := rows.Scan(
			&c.ID, &c.ConfigID, &c.CompanyID, &c.EmployeeID, &c.PayPeriodID,
			&c.PayYear, &c.PayCycleNumber, &c.PayElementID,
			&c.OriginalAmount, &c.IncreaseType, &c.IncreaseValue, &c.AdjustmentAmount,
			&c.EmployeeStatus, &c.CalculationDate,
			&c.ProcessedInRunID, &c.ProcessedAt, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		calculations = append(calculations, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return calculations, nil
}

func (r *retroCalculationRepositoryImpl) MarkProcessed(ctx context.Context, companyID, employeeID, payGroupID, payrollRunID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// processed_in_run_id IS NULL makes repeated calls for the same run a
	// no-op.
	query := `
		UPDATE retroactive_pay_calculations rc
		SET processed_in_run_id = $1, processed_at = NOW()
		FROM retroactive_pay_configs c
		WHERE rc.config_id = c.id
		  AND rc.company_id = $2
		  AND rc.employee_id = $3
		  AND c.pay_group_id = $4
		  AND c.status = $5
		  AND rc.processed_in_run_id IS NULL
	`

	tag, err := q.Exec(ctx, query, payrollRunID, companyID, employeeID, payGroupID, retro.ConfigStatusApproved)
	if err != nil {
		return 0, fmt.Errorf("failed to mark calculations processed: %w", err)
	}

	return tag.RowsAffected(), nil
}
