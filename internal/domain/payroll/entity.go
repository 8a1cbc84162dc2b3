package payroll

import (
	"time"

	"github.com/eventops/eventops-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
)

// PaymentAdjustment is a manually entered correction for one vendor on one
// event. Adjustment and reimbursement are stored as two named fields so
// provenance survives for audit; they are summed exactly once, at the
// engine boundary.
type PaymentAdjustment struct {
	ID            string
	EventID       string
	VendorID      string
	Adjustment    decimal.Decimal
	Reimbursement decimal.Decimal
	Note          *string
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Net is the single place the two correction fields collapse into the
// number the pay formula consumes.
func (a PaymentAdjustment) Net() decimal.Decimal {
	return a.Adjustment.Add(a.Reimbursement)
}

// VendorPaymentRow is a persisted per-vendor shift record for an event.
// When rows exist for an event they are the source of worked time; when
// none exist the engine synthesizes shifts live from raw clock events.
type VendorPaymentRow struct {
	ID        string
	EventID   string
	VendorID  string
	Span      timeclock.ShiftSpan
	CreatedAt time.Time
	UpdatedAt time.Time
}
