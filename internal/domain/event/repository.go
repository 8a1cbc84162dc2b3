package event

import "context"

// EventRepository reads event records and their financial inputs.
type EventRepository interface {
	GetByID(ctx context.Context, eventID string) (Event, error)
	GetFinancials(ctx context.Context, eventID string) (Financials, error)
}
