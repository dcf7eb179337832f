package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID  = "company-1"
	testEmployeeID = "employee-1"
)

type fakeLeaveRequestRepo struct {
	requests []leave.LeaveRequest
	err      error
}

func (f *fakeLeaveRequestRepo) GetApprovedOverlapping(_ context.Context, _, employeeID string, periodStart, periodEnd time.Time) ([]leave.LeaveRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID != employeeID || r.Status != leave.LeaveRequestStatusApproved {
			continue
		}
		if r.StartDate.After(periodEnd) || r.EndDate.Before(periodStart) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
	rules map[string]leave.PaymentRule
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string, _ string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetPaymentRule(_ context.Context, leaveTypeID string, _ string) (leave.PaymentRule, error) {
	rule, ok := f.rules[leaveTypeID]
	if !ok {
		return leave.PaymentRule{}, leave.ErrPaymentRuleNotFound
	}
	return rule, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCalculator(requests []leave.LeaveRequest, types map[string]leave.LeaveType, rules map[string]leave.PaymentRule) *ImpactCalculator {
	return NewImpactCalculator(
		&fakeLeaveRequestRepo{requests: requests},
		&fakeLeaveTypeRepo{types: types, rules: rules},
	)
}

func approvedRequest(leaveTypeID string, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          uuid.NewString(),
		EmployeeID:  testEmployeeID,
		LeaveTypeID: leaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Status:      leave.LeaveRequestStatusApproved,
	}
}

// ===== WORKING DAY COUNTING =====

func TestCountWorkingDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		// 2024-03-04 is a Monday
		{"full week has two weekend days", date(2024, time.March, 4), date(2024, time.March, 10), 5},
		{"weekday-only range counts every day", date(2024, time.March, 4), date(2024, time.March, 8), 5},
		{"single weekday", date(2024, time.March, 6), date(2024, time.March, 6), 1},
		{"weekend only", date(2024, time.March, 9), date(2024, time.March, 10), 0},
		{"ten calendar days over two weekends", date(2024, time.March, 4), date(2024, time.March, 13), 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CountWorkingDays(c.start, c.end))
		})
	}
}

// ===== OVERLAP =====

func TestCalculateLeaveImpact_OverlapWindow(t *testing.T) {
	types := map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Name: "Annual Leave", IsPaid: true, PaymentMethod: leave.PaymentMethodFullPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-annual", date(2024, time.March, 1), date(2024, time.March, 10))},
		types, nil,
	)

	// Period starts mid-request: effective window is Mar 5 - Mar 10,
	// which holds 4 working days (Mar 9-10 are a weekend).
	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 5), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, 4.0, summary.Transactions[0].Days)
	assert.True(t, summary.Transactions[0].GrossAmount.Equal(decimal.NewFromInt(400)))
}

func TestCalculateLeaveImpact_RequestOutsidePeriodExcluded(t *testing.T) {
	types := map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Name: "Annual Leave", IsPaid: true, PaymentMethod: leave.PaymentMethodFullPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-annual", date(2024, time.January, 1), date(2024, time.January, 5))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	assert.Empty(t, summary.Transactions)
	assert.Zero(t, summary.TotalPaidLeaveDays)
	assert.Zero(t, summary.TotalUnpaidDays)
}

// ===== CLASSIFICATION =====

func TestCalculateLeaveImpact_FullPay(t *testing.T) {
	// Scenario: dailyRate=100, one 10-calendar-day full-pay request fully
	// inside a 30-day pay period spanning two weekends.
	types := map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Name: "Annual Leave", IsPaid: true, PaymentMethod: leave.PaymentMethodFullPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-annual", date(2024, time.March, 4), date(2024, time.March, 13))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 30),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)

	tx := summary.Transactions[0]
	assert.Equal(t, leave.TransactionTypePaidLeave, tx.Type)
	assert.Equal(t, 8.0, tx.Days)
	assert.True(t, tx.GrossAmount.Equal(decimal.NewFromInt(800)), "gross = %s", tx.GrossAmount)
	assert.True(t, tx.NetAmount.Equal(decimal.NewFromInt(800)), "net = %s", tx.NetAmount)
	assert.True(t, summary.TotalUnpaidDeduction.IsZero())
	assert.Equal(t, 8.0, summary.TotalPaidLeaveDays)
	assert.True(t, summary.TotalPaidLeaveAmount.Equal(decimal.NewFromInt(800)))
}

func TestCalculateLeaveImpact_Unpaid(t *testing.T) {
	// Same request but the leave type is unpaid: full deduction.
	types := map[string]leave.LeaveType{
		"lt-unpaid": {ID: "lt-unpaid", Name: "Unpaid Leave", IsPaid: false, PaymentMethod: leave.PaymentMethodUnpaid},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-unpaid", date(2024, time.March, 4), date(2024, time.March, 13))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 30),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)

	tx := summary.Transactions[0]
	assert.Equal(t, leave.TransactionTypeUnpaidDeduction, tx.Type)
	assert.True(t, tx.NetAmount.IsZero())
	assert.True(t, summary.TotalUnpaidDeduction.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 8.0, summary.TotalUnpaidDays)
	assert.Zero(t, summary.TotalPaidLeaveDays)
}

func TestCalculateLeaveImpact_UnpaidFlagWinsOverPaymentMethod(t *testing.T) {
	// is_paid = false forces a zero percentage even when the payment
	// method says full_pay.
	types := map[string]leave.LeaveType{
		"lt-x": {ID: "lt-x", Name: "Special Leave", IsPaid: false, PaymentMethod: leave.PaymentMethodFullPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-x", date(2024, time.March, 4), date(2024, time.March, 8))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)
	assert.Equal(t, leave.TransactionTypeUnpaidDeduction, summary.Transactions[0].Type)
	assert.True(t, summary.Transactions[0].PaymentPercentage.IsZero())
}

func TestCalculateLeaveImpact_Statutory(t *testing.T) {
	types := map[string]leave.LeaveType{
		"lt-sick": {ID: "lt-sick", Name: "Sick Leave", IsPaid: true, PaymentMethod: leave.PaymentMethodStatutory},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-sick", date(2024, time.March, 4), date(2024, time.March, 8))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)

	tx := summary.Transactions[0]
	assert.Equal(t, leave.TransactionTypeSickStatutory, tx.Type)
	// 5 working days x 100 x 66%
	assert.True(t, tx.NetAmount.Equal(decimal.NewFromInt(330)), "net = %s", tx.NetAmount)
	assert.True(t, summary.TotalUnpaidDeduction.Equal(decimal.NewFromInt(170)))
	assert.InDelta(t, 3.3, summary.TotalPaidLeaveDays, 0.0001)
	assert.InDelta(t, 1.7, summary.TotalUnpaidDays, 0.0001)
}

// ===== TIER SELECTION =====

func TestCalculateLeaveImpact_TierSelection(t *testing.T) {
	five := 5
	ten := 10
	types := map[string]leave.LeaveType{
		"lt-reduced": {ID: "lt-reduced", Name: "Extended Sick", IsPaid: true, PaymentMethod: leave.PaymentMethodReducedPay},
	}
	rules := map[string]leave.PaymentRule{
		"lt-reduced": {
			ID:          "rule-1",
			LeaveTypeID: "lt-reduced",
			Tiers: []leave.PaymentTier{
				{FromDay: 1, ToDay: &five, PaymentPercentage: decimal.NewFromInt(100), SortOrder: 1},
				{FromDay: 6, ToDay: &ten, PaymentPercentage: decimal.NewFromInt(50), SortOrder: 2},
			},
		},
	}

	// Mar 4 - Mar 12 holds 7 working days: the second tier applies.
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-reduced", date(2024, time.March, 4), date(2024, time.March, 12))},
		types, rules,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)

	tx := summary.Transactions[0]
	assert.Equal(t, 7.0, tx.Days)
	assert.True(t, tx.PaymentPercentage.Equal(decimal.NewFromInt(50)))
	assert.True(t, tx.GrossAmount.Equal(decimal.NewFromInt(700)))
	assert.True(t, tx.NetAmount.Equal(decimal.NewFromInt(350)), "net = %s", tx.NetAmount)
}

func TestSelectTierPercentage(t *testing.T) {
	five := 5
	ten := 10
	tiers := []leave.PaymentTier{
		{FromDay: 1, ToDay: &five, PaymentPercentage: decimal.NewFromInt(100), SortOrder: 1},
		{FromDay: 6, ToDay: &ten, PaymentPercentage: decimal.NewFromInt(50), SortOrder: 2},
		{FromDay: 11, ToDay: nil, PaymentPercentage: decimal.NewFromInt(25), SortOrder: 3},
	}

	cases := []struct {
		days int
		want int64
	}{
		{1, 100},
		{5, 100},
		{6, 50},
		{10, 50},
		{11, 25},
		{40, 25}, // open-ended last tier
	}
	for _, c := range cases {
		got := selectTierPercentage(tiers, c.days)
		assert.True(t, got.Equal(decimal.NewFromInt(c.want)), "days=%d got=%s", c.days, got)
	}

	// No matching tier falls back to the 50% default.
	assert.True(t, selectTierPercentage(nil, 3).Equal(decimal.NewFromInt(50)))
}

func TestCalculateLeaveImpact_ReducedPayWithoutRuleDefaultsTo50(t *testing.T) {
	types := map[string]leave.LeaveType{
		"lt-reduced": {ID: "lt-reduced", Name: "Extended Sick", IsPaid: true, PaymentMethod: leave.PaymentMethodReducedPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-reduced", date(2024, time.March, 4), date(2024, time.March, 8))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	require.Len(t, summary.Transactions, 1)
	assert.True(t, summary.Transactions[0].PaymentPercentage.Equal(decimal.NewFromInt(50)))
}

// ===== GUARDS AND FAILURES =====

func TestCalculateLeaveImpact_InvalidRange(t *testing.T) {
	calc := newCalculator(nil, nil, nil)

	_, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 31), date(2024, time.March, 1),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	assert.ErrorIs(t, err, leave.ErrInvalidPeriodRange)
}

func TestCalculateLeaveImpact_NegativeDailyRate(t *testing.T) {
	calc := newCalculator(nil, nil, nil)

	_, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(-1), decimal.Zero)

	assert.ErrorIs(t, err, leave.ErrNegativeDailyRate)
}

func TestCalculateLeaveImpact_FetchFailurePropagates(t *testing.T) {
	fetchErr := errors.New("connection refused")
	calc := NewImpactCalculator(
		&fakeLeaveRequestRepo{err: fetchErr},
		&fakeLeaveTypeRepo{},
	)

	_, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	assert.ErrorIs(t, err, fetchErr)
}

func TestCalculateLeaveImpact_WeekendOnlyOverlapSkipped(t *testing.T) {
	types := map[string]leave.LeaveType{
		"lt-annual": {ID: "lt-annual", Name: "Annual Leave", IsPaid: true, PaymentMethod: leave.PaymentMethodFullPay},
	}
	calc := newCalculator(
		[]leave.LeaveRequest{approvedRequest("lt-annual", date(2024, time.March, 9), date(2024, time.March, 10))},
		types, nil,
	)

	summary, err := calc.CalculateLeaveImpact(context.Background(), testCompanyID, testEmployeeID,
		date(2024, time.March, 1), date(2024, time.March, 31),
		decimal.NewFromInt(100), decimal.NewFromInt(12))

	require.NoError(t, err)
	assert.Empty(t, summary.Transactions)
}
