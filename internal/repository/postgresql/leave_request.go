package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) GetApprovedOverlapping(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Overlap test: request.start <= periodEnd AND request.end >= periodStart
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id,
			   lr.start_date, lr.end_date, lr.total_days,
			   lr.status, lr.submitted_at, lr.created_at, lr.updated_at,
			   lt.name as leave_type_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
		INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
		WHERE e.company_id = $1
		  AND lr.employee_id = $2
		  AND lr.status = $3
		  AND lr.start_date <= $4
		  AND lr.end_date >= $5
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, leave.LeaveRequestStatusApproved, periodEnd, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var leaveTypeName string

		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID,
			&req.StartDate, &req.EndDate, &req.TotalDays,
			&req.Status, &req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
			&leaveTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}

		req.LeaveTypeName = &leaveTypeName
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}
