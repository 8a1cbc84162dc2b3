package timeclock

import (
	"context"
	"time"
)

// TimeEntryRepository reads raw clock events from the external
// time-tracking store. Rows with unparseable timestamps are skipped by the
// implementation, never surfaced as errors.
type TimeEntryRepository interface {
	// GetEventsForWindow returns all clock events for the given vendors
	// whose timestamps fall inside [from, to].
	GetEventsForWindow(ctx context.Context, vendorIDs []string, from, to time.Time) ([]ClockEvent, error)
}

// DayWindowUTC returns the UTC calendar-day window for an event date:
// 00:00:00 through 23:59:59.999.
func DayWindowUTC(date time.Time) (from, to time.Time) {
	d := date.UTC()
	from = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to = from.Add(24*time.Hour - time.Millisecond)
	return from, to
}
