package timeclock

import "time"

// ClockAction enum
type ClockAction string

const (
	ActionClockIn   ClockAction = "clock_in"
	ActionClockOut  ClockAction = "clock_out"
	ActionMealStart ClockAction = "meal_start"
	ActionMealEnd   ClockAction = "meal_end"
)

// ClockEvent is an immutable row produced by the external time-tracking
// subsystem. Events arrive unordered and must be sorted by timestamp
// before pairing.
type ClockEvent struct {
	UserID    string
	Action    ClockAction
	Timestamp time.Time
}

// ShiftSpan is a per-vendor per-event worked window with optional meal
// windows. Invariant: when present, FirstIn <= LastOut and meal windows
// fall inside [FirstIn, LastOut]; violations contribute zero time rather
// than erroring.
type ShiftSpan struct {
	FirstIn         *time.Time
	LastOut         *time.Time
	FirstMealStart  *time.Time
	LastMealEnd     *time.Time
	SecondMealStart *time.Time
	SecondMealEnd   *time.Time
}

// HasClockIn reports whether the span has a recorded first clock-in.
func (s ShiftSpan) HasClockIn() bool {
	return s.FirstIn != nil
}
