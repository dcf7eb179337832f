package retro

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/retro"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type Service struct {
	configRepo          retro.ConfigRepository
	calculationRepo     retro.CalculationRepository
	payPeriodRepo       payroll.PayPeriodRepository
	employeePayrollRepo payroll.EmployeePayrollRepository
}

func NewService(
	configRepo retro.ConfigRepository,
	calculationRepo retro.CalculationRepository,
	payPeriodRepo payroll.PayPeriodRepository,
	employeePayrollRepo payroll.EmployeePayrollRepository,
) *Service {
	return &Service{
		configRepo:          configRepo,
		calculationRepo:     calculationRepo,
		payPeriodRepo:       payPeriodRepo,
		employeePayrollRepo: employeePayrollRepo,
	}
}

// Generate materializes adjustment rows for a config: one row per (employee,
// historical pay period, pay element) with a positive adjustment. Generation
// replaces all prior rows for the config. When any prior row has already been
// consumed by a payroll run the regeneration is refused unless force is set,
// since the replace loses the processed linkage.
func (s *Service) Generate(ctx context.Context, companyID, configID string, force bool) (retro.GenerationResult, error) {
	config, err := s.configRepo.GetByID(ctx, configID, companyID)
	if err != nil {
		return retro.GenerationResult{}, err
	}

	items, err := s.configRepo.GetItems(ctx, configID, companyID)
	if err != nil {
		return retro.GenerationResult{}, fmt.Errorf("failed to load config items: %w", err)
	}
	if len(items) == 0 {
		return retro.GenerationResult{}, retro.ErrNoConfigItems
	}

	periods, err := s.payPeriodRepo.GetInRange(ctx, companyID, config.PayGroupID, config.EffectiveStartDate, config.EffectiveEndDate)
	if err != nil {
		return retro.GenerationResult{}, fmt.Errorf("failed to resolve pay periods: %w", err)
	}
	if len(periods) == 0 {
		return retro.GenerationResult{}, retro.ErrNoPayPeriodsInRange
	}

	if !force {
		processed, err := s.calculationRepo.HasProcessed(ctx, configID, companyID)
		if err != nil {
			return retro.GenerationResult{}, fmt.Errorf("failed to check processed calculations: %w", err)
		}
		if processed {
			return retro.GenerationResult{}, retro.ErrCalculationsAlreadyProcessed
		}
	}

	periodIDs := make([]string, 0, len(periods))
	for _, p := range periods {
		periodIDs = append(periodIDs, p.ID)
	}

	payrolls, err := s.employeePayrollRepo.GetFinalizedByPeriods(ctx, companyID, periodIDs)
	if err != nil {
		return retro.GenerationResult{}, fmt.Errorf("failed to load historical payrolls: %w", err)
	}

	calculations := computeAdjustments(companyID, config, items, payrolls, time.Now())

	if err := s.calculationRepo.ReplaceByConfig(ctx, configID, companyID, calculations); err != nil {
		return retro.GenerationResult{}, fmt.Errorf("failed to persist calculations: %w", err)
	}

	result := retro.GenerationResult{
		ConfigID:        configID,
		Count:           len(calculations),
		TotalAdjustment: decimal.Zero,
		Calculations:    calculations,
	}
	for _, c := range calculations {
		result.TotalAdjustment = result.TotalAdjustment.Add(c.AdjustmentAmount)
	}

	return result, nil
}

// computeAdjustments walks every finalized payroll row and matches its
// earnings against the config items by pay element code.
func computeAdjustments(companyID string, config retro.Config, items []retro.ConfigItem, payrolls []payroll.EmployeePayroll, calculationDate time.Time) []retro.Calculation {
	var calculations []retro.Calculation

	for _, ep := range payrolls {
		for _, item := range items {
			for _, earning := range ep.CalculationDetails.Earnings {
				if earning.Code != item.PayElementCode {
					continue
				}

				adjustment := computeItemAdjustment(item, earning.Amount)
				if !adjustment.IsPositive() {
					continue
				}

				calculations = append(calculations, retro.Calculation{
					ConfigID:         config.ID,
					CompanyID:        companyID,
					EmployeeID:       ep.EmployeeID,
					PayPeriodID:      ep.PayPeriodID,
					PayYear:          ep.PayYear,
					PayCycleNumber:   ep.PayCycleNumber,
					PayElementID:     item.PayElementID,
					OriginalAmount:   earning.Amount,
					IncreaseType:     item.IncreaseType,
					IncreaseValue:    item.IncreaseValue,
					AdjustmentAmount: adjustment,
					EmployeeStatus:   ep.EmployeeStatus,
					CalculationDate:  calculationDate,
				})
			}
		}
	}

	return calculations
}

// computeItemAdjustment applies the item's increase to one earning line.
// Fixed increases only require the earning to exist with a positive amount.
// Clamping is min-then-max, applied independently.
func computeItemAdjustment(item retro.ConfigItem, originalAmount decimal.Decimal) decimal.Decimal {
	var adjustment decimal.Decimal

	switch item.IncreaseType {
	case retro.IncreaseTypeFixed:
		if !originalAmount.IsPositive() {
			return decimal.Zero
		}
		adjustment = item.IncreaseValue
	default: // percentage
		adjustment = originalAmount.Mul(item.IncreaseValue).Div(oneHundred)
	}

	if item.MinAmount != nil && adjustment.LessThan(*item.MinAmount) {
		adjustment = *item.MinAmount
	}
	if item.MaxAmount != nil && adjustment.GreaterThan(*item.MaxAmount) {
		adjustment = *item.MaxAmount
	}

	return adjustment.Round(2)
}

// FetchPendingAmounts aggregates unprocessed calculations for the pay group
// into per-(employee, pay element) pending amounts.
func (s *Service) FetchPendingAmounts(ctx context.Context, companyID, payGroupID string, opts retro.PendingOptions) ([]retro.PendingAmount, error) {
	configs, err := s.eligibleConfigs(ctx, companyID, payGroupID, opts)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}

	configIDs := make([]string, 0, len(configs))
	for _, c := range configs {
		configIDs = append(configIDs, c.ID)
	}

	calculations, err := s.calculationRepo.GetPendingByConfigs(ctx, companyID, configIDs, "")
	if err != nil {
		return nil, err
	}

	type key struct{ employeeID, payElementID string }
	grouped := make(map[key]*retro.PendingAmount)
	var order []key

	for _, c := range calculations {
		k := key{c.EmployeeID, c.PayElementID}
		agg, ok := grouped[k]
		if !ok {
			agg = &retro.PendingAmount{
				EmployeeID:   c.EmployeeID,
				PayElementID: c.PayElementID,
				TotalAmount:  decimal.Zero,
			}
			grouped[k] = agg
			order = append(order, k)
		}
		agg.TotalAmount = agg.TotalAmount.Add(c.AdjustmentAmount)
		agg.CalculationCount++
	}

	result := make([]retro.PendingAmount, 0, len(order))
	for _, k := range order {
		result = append(result, *grouped[k])
	}

	return result, nil
}

// FetchEmployeePending returns one employee's unprocessed retro total with a
// per-(config, pay element) breakdown.
func (s *Service) FetchEmployeePending(ctx context.Context, companyID, employeeID, payGroupID string, opts retro.PendingOptions) (retro.EmployeePending, error) {
	pending := retro.EmployeePending{
		EmployeeID:  employeeID,
		TotalAmount: decimal.Zero,
	}

	configs, err := s.eligibleConfigs(ctx, companyID, payGroupID, opts)
	if err != nil {
		return retro.EmployeePending{}, err
	}
	if len(configs) == 0 {
		return pending, nil
	}

	configNames := make(map[string]string, len(configs))
	configIDs := make([]string, 0, len(configs))
	for _, c := range configs {
		configIDs = append(configIDs, c.ID)
		configNames[c.ID] = c.Name
	}

	calculations, err := s.calculationRepo.GetPendingByConfigs(ctx, companyID, configIDs, employeeID)
	if err != nil {
		return retro.EmployeePending{}, err
	}

	type key struct{ configID, payElementID string }
	grouped := make(map[key]*retro.EmployeePendingItem)
	var order []key

	for _, c := range calculations {
		k := key{c.ConfigID, c.PayElementID}
		item, ok := grouped[k]
		if !ok {
			item = &retro.EmployeePendingItem{
				ConfigID:     c.ConfigID,
				ConfigName:   configNames[c.ConfigID],
				PayElementID: c.PayElementID,
				Amount:       decimal.Zero,
			}
			grouped[k] = item
			order = append(order, k)
		}
		item.Amount = item.Amount.Add(c.AdjustmentAmount)
		item.CalculationCount++
		pending.TotalAmount = pending.TotalAmount.Add(c.AdjustmentAmount)
	}

	for _, k := range order {
		pending.Items = append(pending.Items, *grouped[k])
	}

	return pending, nil
}

// MarkProcessed stamps the employee's unprocessed calculations under the pay
// group with the payroll run. Idempotent: a second call for the same run
// finds no unprocessed rows and marks nothing.
func (s *Service) MarkProcessed(ctx context.Context, companyID string, req retro.MarkProcessedRequest) (retro.MarkProcessedResponse, error) {
	if err := req.Validate(); err != nil {
		return retro.MarkProcessedResponse{}, err
	}

	marked, err := s.calculationRepo.MarkProcessed(ctx, companyID, req.EmployeeID, req.PayGroupID, req.PayrollRunID)
	if err != nil {
		return retro.MarkProcessedResponse{}, err
	}

	return retro.MarkProcessedResponse{
		EmployeeID:   req.EmployeeID,
		PayrollRunID: req.PayrollRunID,
		RowsMarked:   marked,
	}, nil
}

// eligibleConfigs loads approved configs for the pay group and applies the
// targeting filters in memory.
func (s *Service) eligibleConfigs(ctx context.Context, companyID, payGroupID string, opts retro.PendingOptions) ([]retro.Config, error) {
	configs, err := s.configRepo.GetApprovedByPayGroup(ctx, companyID, payGroupID, opts.IncludeManual)
	if err != nil {
		return nil, fmt.Errorf("failed to load retro configs: %w", err)
	}

	var eligible []retro.Config
	for _, c := range configs {
		if opts.RunType != "" && len(c.TargetRunTypes) > 0 && !validator.IsInSlice(opts.RunType, c.TargetRunTypes) {
			continue
		}
		if c.TargetPayPeriodID != nil && opts.PayPeriodID != *c.TargetPayPeriodID {
			continue
		}
		eligible = append(eligible, c)
	}

	return eligible, nil
}
