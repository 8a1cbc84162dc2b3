package http

import (
	"encoding/json"
	"net/http"

	"github.com/eventops/eventops-backend-go/internal/domain/payroll"
	"github.com/eventops/eventops-backend-go/internal/handler/http/response"
	"github.com/eventops/eventops-backend-go/internal/pkg/staterate"
	"github.com/eventops/eventops-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler struct {
	payrollService payroll.PayrollService
	rates          *staterate.Table
}

func NewPayrollHandler(payrollService payroll.PayrollService, rates *staterate.Table) PayrollHandler {
	return PayrollHandler{
		payrollService: payrollService,
		rates:          rates,
	}
}

// GetEventPayroll recomputes the full per-vendor payment breakdown and
// revenue split for one event.
func (h *PayrollHandler) GetEventPayroll(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "eventID is required", nil)
		return
	}

	result, err := h.payrollService.ComputeEventPayroll(r.Context(), eventID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result, result.Warnings)
}

// BatchPayroll computes payroll for several events in one request. Failed
// events come back as empty results with warnings rather than failing the
// batch.
func (h *PayrollHandler) BatchPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payrollService.ComputeEventPayrollBatch(r.Context(), req.EventIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetRevenueSplit returns just the event-level revenue breakdown.
func (h *PayrollHandler) GetRevenueSplit(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")
	if eventID == "" {
		response.BadRequest(w, "eventID is required", nil)
		return
	}

	split, warnings, err := h.payrollService.GetRevenueSplit(r.Context(), eventID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, split, warnings)
}

// SaveAdjustment upserts a vendor's manual correction for an event.
func (h *PayrollHandler) SaveAdjustment(w http.ResponseWriter, r *http.Request) {
	var req payroll.SaveAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}
	req.EventID = chi.URLParam(r, "eventID")
	req.VendorID = chi.URLParam(r, "vendorID")

	saved, err := h.payrollService.SaveAdjustment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "adjustment saved", saved)
}

// GetWageRule exposes the resolved wage rule for a state code, fallback
// included, so operators can see what the engine will use.
func (h *PayrollHandler) GetWageRule(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !validator.IsValidStateCode(code) {
		response.BadRequest(w, "state code must be two letters", nil)
		return
	}
	rule, configured := h.rates.Lookup(code)

	response.Success(w, map[string]interface{}{
		"state_code":         staterate.Normalize(code),
		"configured":         configured,
		"base_rate":          rule.BaseRate,
		"rest_break_applies": rule.RestBreakApplies,
		"flat_commission":    rule.FlatCommission,
	})
}
