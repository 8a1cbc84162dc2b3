package payroll

import (
	"context"

	"github.com/eventops/eventops-backend-go/internal/domain/event"
)

// PayrollService is the computation engine surface. Results are recomputed
// from upstream state on every call; the engine holds no state between
// invocations.
type PayrollService interface {
	ComputeEventPayroll(ctx context.Context, eventID string) (EventPayroll, error)
	ComputeEventPayrollBatch(ctx context.Context, eventIDs []string) (map[string]EventPayroll, error)
	GetRevenueSplit(ctx context.Context, eventID string) (event.RevenueSplit, []string, error)
	SaveAdjustment(ctx context.Context, req SaveAdjustmentRequest) (AdjustmentResponse, error)
}
