package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/retro"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type retroConfigRepositoryImpl struct {
	db *database.DB
}

func NewRetroConfigRepository(db *database.DB) retro.ConfigRepository {
	return &retroConfigRepositoryImpl{db: db}
}

func (r *retroConfigRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (retro.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pay_group_id, name,
			   effective_start_date, effective_end_date, status,
			   target_run_types, target_pay_period_id, auto_include,
			   created_at, updated_at
		FROM retroactive_pay_configs
		WHERE id = $1 AND company_id = $2
	`

	var c retro.Config
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.PayGroupID, &c.Name,
		&c.EffectiveStartDate, &c.EffectiveEndDate, &c.Status,
		&c.TargetRunTypes, &c.TargetPayPeriodID, &c.AutoInclude,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return retro.Config{}, retro.ErrConfigNotFound
		}
		return retro.Config{}, err
	}

	return c, nil
}

func (r *retroConfigRepositoryImpl) GetItems(ctx context.Context, configID string, companyID string) ([]retro.ConfigItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.config_id, i.pay_element_id, pe.code,
			   i.increase_type, i.increase_value, i.min_amount, i.max_amount,
			   i.created_at, i.updated_at
		FROM retroactive_pay_config_items i
		INNER JOIN retroactive_pay_configs c ON i.config_id = c.id
		INNER JOIN pay_elements pe ON i.pay_element_id = pe.id
		WHERE i.config_id = $1 AND c.company_id = $2
		ORDER BY i.created_at ASC
	`

	rows, err := q.Query(ctx, query, configID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query retro config items: %w", err)
	}
	defer rows.Close()

	var items []retro.ConfigItem
	for rows.Next() {
		var item retro.ConfigItem
		err := rows.Scan(
			&item.ID, &item.ConfigID, &item.PayElementID, &item.PayElementCode,
			&item.IncreaseType, &item.IncreaseValue, &item.MinAmount, &item.MaxAmount,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retro config item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

func (r *retroConfigRepositoryImpl) GetApprovedByPayGroup(ctx context.Context, companyID, payGroupID string, includeManual bool) ([]retro.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, pay_group_id, name,
			   effective_start_date, effective_end_date, status,
			   target_run_types, target_pay_period_id, auto_include,
			   created_at, updated_at
		FROM retroactive_pay_configs
		WHERE company_id = $1 AND pay_group_id = $2 AND status = $3
	`
	args := []interface{}{companyID, payGroupID, retro.ConfigStatusApproved}

	if !includeManual {
		query += " AND auto_include = TRUE"
	}
	query += " ORDER BY created_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query retro configs: %w", err)
	}
	defer rows.Close()

	var configs []retro.Config
	for rows.Next() {
		var c retro.Config
		err := rows.Scan(
			&c.ID, &c.CompanyID, &c.PayGroupID, &c.Name,
			&c.EffectiveStartDate, &c.EffectiveEndDate, &c.Status,
			&c.TargetRunTypes, &c.TargetPayPeriodID, &c.AutoInclude,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retro config: %w", err)
		}
		configs = append(configs, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return configs, nil
}
