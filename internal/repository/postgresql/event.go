package postgresql

import (
	"context"
	"fmt"

	"github.com/eventops/eventops-backend-go/internal/domain/event"
	"github.com/eventops/eventops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, eventID string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, event_date, state, venue_id, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var ev event.Event
	err := q.QueryRow(ctx, query, eventID).Scan(
		&ev.ID, &ev.Name, &ev.Date, &ev.State, &ev.VenueID, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return ev, nil
}

func (r *eventRepository) GetFinancials(ctx context.Context, eventID string) (event.Financials, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT event_id, ticket_sales_gross, tips, tax_rate_percent, tax_amount_override,
			   commission_pool_fraction, artist_share_percent, venue_share_percent,
			   operator_share_percent, updated_at
		FROM event_financials
		WHERE event_id = $1
	`

	var f event.Financials
	err := q.QueryRow(ctx, query, eventID).Scan(
		&f.EventID, &f.TicketSalesGross, &f.Tips, &f.TaxRatePercent, &f.TaxAmountOverride,
		&f.CommissionPoolFraction, &f.ArtistSharePercent, &f.VenueSharePercent,
		&f.OperatorSharePercent, &f.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return event.Financials{}, event.ErrFinancialsNotFound
		}
		return event.Financials{}, fmt.Errorf("failed to get event financials: %w", err)
	}

	return f, nil
}
