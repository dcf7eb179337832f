package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, code, is_paid, payment_method, created_at, updated_at
		FROM leave_types
		WHERE id = $1 AND company_id = $2
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&lt.ID, &lt.CompanyID, &lt.Name, &lt.Code,
		&lt.IsPaid, &lt.PaymentMethod,
		&lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

func (r *leaveTypeRepositoryImpl) GetPaymentRule(ctx context.Context, leaveTypeID string, companyID string) (leave.PaymentRule, error) {
	q := GetQuerier(ctx, r.db)

	ruleQuery := `
		SELECT id, company_id, leave_type_id, created_at, updated_at
		FROM leave_payment_rules
		WHERE leave_type_id = $1 AND company_id = $2
	`

	var rule leave.PaymentRule
	err := q.QueryRow(ctx, ruleQuery, leaveTypeID, companyID).Scan(
		&rule.ID, &rule.CompanyID, &rule.LeaveTypeID,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.PaymentRule{}, leave.ErrPaymentRuleNotFound
		}
		return leave.PaymentRule{}, err
	}

	tierQuery := `
		SELECT id, payment_rule_id, from_day, to_day, payment_percentage, sort_order
		FROM leave_payment_tiers
		WHERE payment_rule_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := q.Query(ctx, tierQuery, rule.ID)
	if err != nil {
		return leave.PaymentRule{}, fmt.Errorf("failed to query payment tiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tier leave.PaymentTier
		err := rows.Scan(
			&tier.ID, &tier.PaymentRuleID,
			&tier.FromDay, &tier.ToDay, &tier.PaymentPercentage, &tier.SortOrder,
		)
		if err != nil {
			return leave.PaymentRule{}, fmt.Errorf("failed to scan payment tier: %w", err)
		}
		rule.Tiers = append(rule.Tiers, tier)
	}

	if err = rows.Err(); err != nil {
		return leave.PaymentRule{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return rule, nil
}
