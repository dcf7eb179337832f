package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var (
	percentFull      = decimal.NewFromInt(100)
	percentStatutory = decimal.NewFromInt(66)
	percentReduced   = decimal.NewFromInt(50) // default when a reduced_pay type has no tiers
	oneHundred       = decimal.NewFromInt(100)
)

// ImpactCalculator computes per-pay-period payroll transactions from
// approved leave requests. Pure read and compute; nothing is persisted until
// SaveTransactions is called on the service.
type ImpactCalculator struct {
	leaveRequestRepo leave.LeaveRequestRepository
	leaveTypeRepo    leave.LeaveTypeRepository
}

func NewImpactCalculator(
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveTypeRepo leave.LeaveTypeRepository,
) *ImpactCalculator {
	return &ImpactCalculator{
		leaveRequestRepo: leaveRequestRepo,
		leaveTypeRepo:    leaveTypeRepo,
	}
}

// CalculateLeaveImpact scans approved leave requests overlapping
// [periodStart, periodEnd] (inclusive) and classifies each by payment policy.
// Read failures propagate as errors; a zero-valued summary with a nil error
// always means "no leave in the period".
func (c *ImpactCalculator) CalculateLeaveImpact(
	ctx context.Context,
	companyID, employeeID string,
	periodStart, periodEnd time.Time,
	dailyRate, hourlyRate decimal.Decimal,
) (leave.PayrollSummary, error) {
	if periodStart.After(periodEnd) {
		return leave.PayrollSummary{}, leave.ErrInvalidPeriodRange
	}
	if dailyRate.IsNegative() {
		return leave.PayrollSummary{}, leave.ErrNegativeDailyRate
	}

	requests, err := c.leaveRequestRepo.GetApprovedOverlapping(ctx, companyID, employeeID, periodStart, periodEnd)
	if err != nil {
		return leave.PayrollSummary{}, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	summary := leave.NewPayrollSummary(employeeID)
	leaveTypes := make(map[string]leave.LeaveType)

	for _, req := range requests {
		overlapStart := maxDate(req.StartDate, periodStart)
		overlapEnd := minDate(req.EndDate, periodEnd)

		workingDays := CountWorkingDays(overlapStart, overlapEnd)
		if workingDays == 0 {
			continue
		}

		leaveType, ok := leaveTypes[req.LeaveTypeID]
		if !ok {
			leaveType, err = c.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID, companyID)
			if err != nil {
				return leave.PayrollSummary{}, fmt.Errorf("failed to fetch leave type %s: %w", req.LeaveTypeID, err)
			}
			leaveTypes[req.LeaveTypeID] = leaveType
		}

		percentage, txType, err := c.classifyPayment(ctx, companyID, leaveType, workingDays)
		if err != nil {
			return leave.PayrollSummary{}, err
		}

		days := float64(workingDays)
		gross := dailyRate.Mul(decimal.NewFromInt(int64(workingDays)))
		net := gross.Mul(percentage).Div(oneHundred).Round(2)
		deduction := gross.Sub(net)

		typeName := leaveType.Name
		if req.LeaveTypeName != nil {
			typeName = *req.LeaveTypeName
		}

		summary.Transactions = append(summary.Transactions, leave.Transaction{
			LeaveRequestID:    req.ID,
			LeaveTypeID:       leaveType.ID,
			LeaveTypeName:     typeName,
			Type:              txType,
			Days:              days,
			DailyRate:         dailyRate,
			GrossAmount:       gross,
			PaymentPercentage: percentage,
			NetAmount:         net,
			Description: fmt.Sprintf("%s (%s - %s)", typeName,
				overlapStart.Format("2006-01-02"), overlapEnd.Format("2006-01-02")),
		})

		paidFraction, _ := percentage.Div(oneHundred).Float64()
		summary.TotalUnpaidDays += days * (1 - paidFraction)
		summary.TotalUnpaidDeduction = summary.TotalUnpaidDeduction.Add(deduction)
		summary.TotalPaidLeaveDays += days * paidFraction
		summary.TotalPaidLeaveAmount = summary.TotalPaidLeaveAmount.Add(net)
	}

	return summary, nil
}

// classifyPayment maps a leave type's payment policy to a percentage and
// transaction type. An unpaid flag wins over any payment method.
func (c *ImpactCalculator) classifyPayment(ctx context.Context, companyID string, leaveType leave.LeaveType, workingDays int) (decimal.Decimal, leave.TransactionType, error) {
	if !leaveType.IsPaid || leaveType.PaymentMethod == leave.PaymentMethodUnpaid {
		return decimal.Zero, leave.TransactionTypeUnpaidDeduction, nil
	}

	switch leaveType.PaymentMethod {
	case leave.PaymentMethodStatutory:
		return percentStatutory, leave.TransactionTypeSickStatutory, nil

	case leave.PaymentMethodReducedPay:
		rule, err := c.leaveTypeRepo.GetPaymentRule(ctx, leaveType.ID, companyID)
		if err != nil {
			if errors.Is(err, leave.ErrPaymentRuleNotFound) {
				return percentReduced, leave.TransactionTypeReducedPayLeave, nil
			}
			return decimal.Zero, "", fmt.Errorf("failed to fetch payment rule for leave type %s: %w", leaveType.ID, err)
		}
		return selectTierPercentage(rule.Tiers, workingDays), leave.TransactionTypeReducedPayLeave, nil

	default:
		// full_pay, and any unknown method, pays in full
		return percentFull, leave.TransactionTypePaidLeave, nil
	}
}

// selectTierPercentage picks the first tier (by sort order) whose day range
// contains workingDays. A nil ToDay is open-ended. The lookup uses only this
// pay period's slice, not a cumulative counter across periods.
func selectTierPercentage(tiers []leave.PaymentTier, workingDays int) decimal.Decimal {
	for _, tier := range tiers {
		if workingDays < tier.FromDay {
			continue
		}
		if tier.ToDay != nil && workingDays > *tier.ToDay {
			continue
		}
		return tier.PaymentPercentage
	}
	return percentReduced
}

// CountWorkingDays counts the weekdays in [start, end] inclusive. Fixed
// five-day week; no holiday calendar.
func CountWorkingDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
