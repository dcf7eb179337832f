package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-adjust-go/internal/domain/leave"
	"github.com/cmlabs-hris/payroll-adjust-go/internal/handler/http/response"
	leaveService "github.com/cmlabs-hris/payroll-adjust-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler struct {
	service *leaveService.PayrollService
}

func NewLeaveHandler(service *leaveService.PayrollService) LeaveHandler {
	return LeaveHandler{service: service}
}

// GetPayrollSummary handles GET /leave/summary
func (h *LeaveHandler) GetPayrollSummary(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	req := leave.GetPayrollSummaryRequest{
		EmployeeID:  r.URL.Query().Get("employee_id"),
		PayPeriodID: r.URL.Query().Get("pay_period_id"),
	}

	summary, err := h.service.GetPayrollSummary(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// SaveTransactions handles POST /leave/transactions
func (h *LeaveHandler) SaveTransactions(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req leave.SaveTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	saved, err := h.service.SaveTransactions(r.Context(), companyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave transactions saved", map[string]interface{}{
		"count": len(saved),
	})
}

// GetRunTransactions handles GET /payroll-runs/{runID}/leave-transactions
func (h *LeaveHandler) GetRunTransactions(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	runID := chi.URLParam(r, "runID")

	transactions, err := h.service.GetTransactions(r.Context(), companyID, runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, transactions)
}
