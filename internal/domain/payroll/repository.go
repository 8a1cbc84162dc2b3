package payroll

import "context"

// PaymentRepository persists per-vendor shift rows and manual adjustments.
// Adjustments change between calls, so the engine re-reads them on every
// computation instead of caching.
type PaymentRepository interface {
	// GetVendorPaymentRows returns the persisted shift rows for an event.
	// An empty slice means the engine must synthesize shifts from raw
	// clock events.
	GetVendorPaymentRows(ctx context.Context, eventID string) ([]VendorPaymentRow, error)

	// GetAdjustments returns the latest adjustment per vendor for an event.
	GetAdjustments(ctx context.Context, eventID string) (map[string]PaymentAdjustment, error)

	// UpsertAdjustment writes a vendor's correction, keyed by
	// (event, vendor). The write path serializes per key in SQL so
	// concurrent edits cannot lose updates.
	UpsertAdjustment(ctx context.Context, adj PaymentAdjustment) (PaymentAdjustment, error)
}
