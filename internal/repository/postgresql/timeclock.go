package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/eventops/eventops-backend-go/internal/domain/timeclock"
	"github.com/eventops/eventops-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeclock.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) GetEventsForWindow(ctx context.Context, vendorIDs []string, from, to time.Time) ([]timeclock.ClockEvent, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	// Timestamps are stored as text by the upstream time-tracking system,
	// so parsing happens here. Unparseable rows are skipped, never fatal.
	query := `
		SELECT user_id, action, recorded_at
		FROM clock_events
		WHERE user_id = ANY($1)
		  AND recorded_at >= $2
		  AND recorded_at <= $3
		ORDER BY recorded_at
	`

	rows, err := q.Query(ctx, query, vendorIDs, from.Format(time.RFC3339Nano), to.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("failed to get clock events: %w", err)
	}
	defer rows.Close()

	var events []timeclock.ClockEvent
	for rows.Next() {
		var userID, action, recordedAt string
		if err := rows.Scan(&userID, &action, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			// Malformed timestamp: skip the row, keep the vendor's
			// remaining events.
			continue
		}
		events = append(events, timeclock.ClockEvent{
			UserID:    userID,
			Action:    timeclock.ClockAction(action),
			Timestamp: ts.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read clock event rows: %w", err)
	}

	return events, nil
}
