package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/retro"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/handler/http/response"
	retroService "github.com/cmlabs-hris/payroll-adjust-go/internal/service/retro"
	"github.com/go-chi/chi/v5"
)

type RetroHandler struct {
	service *retroService.Service
}

func NewRetroHandler(service *retroService.Service) RetroHandler {
	return RetroHandler{service: service}
}

// Generate handles POST /retro/configs/{configID}/generate
func (h *RetroHandler) Generate(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	configID := chi.URLParam(r, "configID")
	force := r.URL.Query().Get("force") == "true"

	result, err := h.service.Generate(r.Context(), companyID, configID, force)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapToGenerationResponse(result))
}

// GetPendingAmounts handles GET /retro/pending
func (h *RetroHandler) GetPendingAmounts(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	payGroupID := r.URL.Query().Get("pay_group_id")
	if payGroupID == "" {
		response.BadRequest(w, "pay_group_id is required", nil)
		return
	}

	opts := pendingOptionsFromQuery(r)

	pending, err := h.service.FetchPendingAmounts(r.Context(), companyID, payGroupID, opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]retro.PendingAmountResponse, 0, len(pending))
	for _, p := range pending {
		result = append(result, retro.PendingAmountResponse{
			EmployeeID:       p.EmployeeID,
			PayElementID:     p.PayElementID,
			TotalAmount:      p.TotalAmount,
			CalculationCount: p.CalculationCount,
		})
	}

	response.Success(w, result)
}

// GetEmployeePending handles GET /retro/pending/employee/{employeeID}
func (h *RetroHandler) GetEmployeePending(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	payGroupID := r.URL.Query().Get("pay_group_id")
	if payGroupID == "" {
		response.BadRequest(w, "pay_group_id is required", nil)
		return
	}

	opts := pendingOptionsFromQuery(r)

	pending, err := h.service.FetchEmployeePending(r.Context(), companyID, employeeID, payGroupID, opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]retro.EmployeePendingItemResponse, 0, len(pending.Items))
	for _, item := range pending.Items {
		items = append(items, retro.EmployeePendingItemResponse{
			ConfigID:         item.ConfigID,
			ConfigName:       item.ConfigName,
			PayElementID:     item.PayElementID,
			Amount:           item.Amount,
			CalculationCount: item.CalculationCount,
		})
	}

	response.Success(w, retro.EmployeePendingResponse{
		EmployeeID:  pending.EmployeeID,
		TotalAmount: pending.TotalAmount,
		Items:       items,
	})
}

// MarkProcessed handles POST /retro/processed
func (h *RetroHandler) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req retro.MarkProcessedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.MarkProcessed(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func pendingOptionsFromQuery(r *http.Request) retro.PendingOptions {
	return retro.PendingOptions{
		RunType:       r.URL.Query().Get("run_type"),
		PayPeriodID:   r.URL.Query().Get("pay_period_id"),
		IncludeManual: r.URL.Query().Get("include_manual") == "true",
	}
}

func mapToGenerationResponse(result retro.GenerationResult) retro.GenerationResultResponse {
	calculations := make([]retro.CalculationResponse, 0, len(result.Calculations))
	for _, c := range result.Calculations {
		calculations = append(calculations, retro.CalculationResponse{
			ID:               c.ID,
			ConfigID:         c.ConfigID,
			EmployeeID:       c.EmployeeID,
			PayPeriodID:      c.PayPeriodID,
			PayYear:          c.PayYear,
			PayCycleNumber:   c.PayCycleNumber,
			PayElementID:     c.PayElementID,
			OriginalAmount:   c.OriginalAmount,
			IncreaseType:     string(c.IncreaseType),
			IncreaseValue:    c.IncreaseValue,
			AdjustmentAmount: c.AdjustmentAmount,
		})
	}

	return retro.GenerationResultResponse{
		ConfigID:        result.ConfigID,
		Count:           result.Count,
		TotalAdjustment: result.TotalAdjustment,
		Calculations:    calculations,
	}
}
