package payroll

import (
	"github.com/eventops/eventops-backend-go/internal/domain/event"
	"github.com/eventops/eventops-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// VendorPaymentRecord is the computed gross-pay breakdown for one vendor on
// one event. It is recomputed on every request and is not authoritative
// until a caller persists it.
type VendorPaymentRecord struct {
	VendorID             string          `json:"vendor_id"`
	VendorName           string          `json:"vendor_name,omitempty"`
	Division             string          `json:"division"`
	ActualHours          decimal.Decimal `json:"actual_hours"`
	RegularPay           decimal.Decimal `json:"regular_pay"`
	CommissionAmount     decimal.Decimal `json:"commission_amount"`
	TotalFinalCommission decimal.Decimal `json:"total_final_commission"`
	Tips                 decimal.Decimal `json:"tips"`
	RestBreak            decimal.Decimal `json:"rest_break"`
	AdjustmentAmount     decimal.Decimal `json:"adjustment_amount"`
	TotalGrossPay        decimal.Decimal `json:"total_gross_pay"`
}

// EventPayroll is the full per-event computation result: one record per
// rostered vendor plus the event-level revenue split. Warnings carry
// non-fatal data-quality findings (share percentages not totaling 100,
// unknown state codes, missing upstream data).
type EventPayroll struct {
	EventID        string                `json:"event_id"`
	VendorPayments []VendorPaymentRecord `json:"vendor_payments"`
	RevenueSplit   event.RevenueSplit    `json:"revenue_split"`
	Warnings       []string              `json:"warnings,omitempty"`
}

// SaveAdjustmentRequest upserts a vendor's manual correction for an event.
type SaveAdjustmentRequest struct {
	EventID       string           `json:"-"`
	VendorID      string           `json:"-"`
	Adjustment    *decimal.Decimal `json:"adjustment,omitempty"`
	Reimbursement *decimal.Decimal `json:"reimbursement,omitempty"`
	Note          *string          `json:"note,omitempty"`
}

func (r *SaveAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EventID) {
		errs = append(errs, validator.ValidationError{Field: "event_id", Message: "is required"})
	}
	if validator.IsEmpty(r.VendorID) {
		errs = append(errs, validator.ValidationError{Field: "vendor_id", Message: "is required"})
	}
	if r.Adjustment == nil && r.Reimbursement == nil {
		errs = append(errs, validator.ValidationError{Field: "adjustment", Message: "adjustment or reimbursement is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdjustmentResponse echoes the persisted correction with both source
// fields and the collapsed net value.
type AdjustmentResponse struct {
	EventID       string          `json:"event_id"`
	VendorID      string          `json:"vendor_id"`
	Adjustment    decimal.Decimal `json:"adjustment"`
	Reimbursement decimal.Decimal `json:"reimbursement"`
	Net           decimal.Decimal `json:"net"`
	Note          *string         `json:"note,omitempty"`
}

// BatchRequest asks for payroll across several mutually independent events.
type BatchRequest struct {
	EventIDs []string `json:"event_ids"`
}

func (r *BatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EventIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "event_ids", Message: "is required"})
	}
	for _, id := range r.EventIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "event_ids", Message: "must not contain empty ids"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
