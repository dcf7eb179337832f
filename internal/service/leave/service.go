package leave

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Pay-frequency annualization multipliers. Unknown frequencies fall back to
// monthly.
var annualizationFactors = map[employee.PayFrequency]int64{
	employee.PayFrequencyHourly:      2080,
	employee.PayFrequencyDaily:       260,
	employee.PayFrequencyWeekly:      52,
	employee.PayFrequencyBiweekly:    26,
	employee.PayFrequencySemimonthly: 24,
	employee.PayFrequencyMonthly:     12,
	employee.PayFrequencyAnnual:      1,
}

const (
	workingDaysPerYear = 260
	workingHoursPerDay = 8
)

type PayrollService struct {
	calculator       *ImpactCalculator
	transactionRepo  leave.TransactionRepository
	payPeriodRepo    payroll.PayPeriodRepository
	compensationRepo employee.CompensationRepository
}

func NewPayrollService(
	calculator *ImpactCalculator,
	transactionRepo leave.TransactionRepository,
	payPeriodRepo payroll.PayPeriodRepository,
	compensationRepo employee.CompensationRepository,
) *PayrollService {
	return &PayrollService{
		calculator:       calculator,
		transactionRepo:  transactionRepo,
		payPeriodRepo:    payPeriodRepo,
		compensationRepo: compensationRepo,
	}
}

// GetPayrollSummary resolves the pay period's date range and the employee's
// rates, then delegates to the impact calculator.
func (s *PayrollService) GetPayrollSummary(ctx context.Context, companyID string, req leave.GetPayrollSummaryRequest) (leave.PayrollSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PayrollSummaryResponse{}, err
	}

	period, err := s.payPeriodRepo.GetByID(ctx, req.PayPeriodID, companyID)
	if err != nil {
		return leave.PayrollSummaryResponse{}, err
	}

	dailyRate, hourlyRate, err := s.deriveRates(ctx, companyID, req.EmployeeID)
	if err != nil {
		return leave.PayrollSummaryResponse{}, err
	}

	summary, err := s.calculator.CalculateLeaveImpact(ctx, companyID, req.EmployeeID, period.StartDate, period.EndDate, dailyRate, hourlyRate)
	if err != nil {
		return leave.PayrollSummaryResponse{}, err
	}

	return mapToSummaryResponse(summary, period.ID), nil
}

// SaveTransactions recomputes the employee's leave impact for the pay period
// and persists the resulting transactions, replacing any unprocessed rows
// from an earlier simulation of the same period.
func (s *PayrollService) SaveTransactions(ctx context.Context, companyID string, req leave.SaveTransactionsRequest) ([]leave.PayrollTransaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period, err := s.payPeriodRepo.GetByID(ctx, req.PayPeriodID, companyID)
	if err != nil {
		return nil, err
	}

	dailyRate, hourlyRate, err := s.deriveRates(ctx, companyID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	summary, err := s.calculator.CalculateLeaveImpact(ctx, companyID, req.EmployeeID, period.StartDate, period.EndDate, dailyRate, hourlyRate)
	if err != nil {
		return nil, err
	}

	rows := make([]leave.PayrollTransaction, 0, len(summary.Transactions))
	for _, t := range summary.Transactions {
		rows = append(rows, leave.PayrollTransaction{
			CompanyID:         companyID,
			EmployeeID:        req.EmployeeID,
			PayPeriodID:       req.PayPeriodID,
			PayrollRunID:      req.PayrollRunID,
			LeaveRequestID:    t.LeaveRequestID,
			Type:              t.Type,
			LeaveDays:         t.Days,
			LeaveHours:        t.Days * workingHoursPerDay,
			DailyRate:         dailyRate.Round(2),
			HourlyRate:        hourlyRate.Round(2),
			GrossAmount:       t.GrossAmount.Round(2),
			PaymentPercentage: t.PaymentPercentage,
			NetAmount:         t.NetAmount.Round(2),
			Description:       t.Description,
		})
	}

	if err := s.transactionRepo.ReplaceForPeriod(ctx, companyID, req.EmployeeID, req.PayPeriodID, rows); err != nil {
		return nil, fmt.Errorf("failed to save leave transactions: %w", err)
	}

	return rows, nil
}

// GetTransactions returns the persisted leave transactions attached to a
// payroll run, in creation order.
func (s *PayrollService) GetTransactions(ctx context.Context, companyID, payrollRunID string) ([]leave.PayrollTransactionResponse, error) {
	transactions, err := s.transactionRepo.GetByPayrollRun(ctx, payrollRunID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]leave.PayrollTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, leave.PayrollTransactionResponse{
			ID:                t.ID,
			EmployeeID:        t.EmployeeID,
			PayPeriodID:       t.PayPeriodID,
			PayrollRunID:      t.PayrollRunID,
			LeaveRequestID:    t.LeaveRequestID,
			Type:              string(t.Type),
			LeaveDays:         t.LeaveDays,
			LeaveHours:        t.LeaveHours,
			DailyRate:         t.DailyRate,
			HourlyRate:        t.HourlyRate,
			GrossAmount:       t.GrossAmount,
			PaymentPercentage: t.PaymentPercentage,
			NetAmount:         t.NetAmount,
			Description:       t.Description,
		})
	}

	return result, nil
}

// deriveRates annualizes the employee's primary active compensation and
// breaks it down to daily and hourly rates.
func (s *PayrollService) deriveRates(ctx context.Context, companyID, employeeID string) (dailyRate, hourlyRate decimal.Decimal, err error) {
	comp, err := s.compensationRepo.GetPrimaryActive(ctx, employeeID, companyID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	factor, ok := annualizationFactors[comp.PayFrequency]
	if !ok {
		factor = annualizationFactors[employee.PayFrequencyMonthly]
	}

	annual := comp.Amount.Mul(decimal.NewFromInt(factor))
	dailyRate = annual.DivRound(decimal.NewFromInt(workingDaysPerYear), 4)
	hourlyRate = annual.DivRound(decimal.NewFromInt(workingDaysPerYear*workingHoursPerDay), 4)

	return dailyRate, hourlyRate, nil
}

func mapToSummaryResponse(summary leave.PayrollSummary, payPeriodID string) leave.PayrollSummaryResponse {
	transactions := make([]leave.TransactionResponse, 0, len(summary.Transactions))
	for _, t := range summary.Transactions {
		transactions = append(transactions, leave.TransactionResponse{
			LeaveRequestID:    t.LeaveRequestID,
			LeaveTypeName:     t.LeaveTypeName,
			Type:              string(t.Type),
			Days:              t.Days,
			DailyRate:         t.DailyRate,
			GrossAmount:       t.GrossAmount,
			PaymentPercentage: t.PaymentPercentage,
			NetAmount:         t.NetAmount,
			Description:       t.Description,
		})
	}

	return leave.PayrollSummaryResponse{
		EmployeeID:           summary.EmployeeID,
		PayPeriodID:          payPeriodID,
		TotalUnpaidDays:      summary.TotalUnpaidDays,
		TotalUnpaidDeduction: summary.TotalUnpaidDeduction,
		TotalPaidLeaveDays:   summary.TotalPaidLeaveDays,
		TotalPaidLeaveAmount: summary.TotalPaidLeaveAmount,
		Transactions:         transactions,
	}
}
