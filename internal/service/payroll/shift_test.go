package payroll

import (
	"testing"
	"time"

	"github.com/eventops/eventops-backend-go/internal/domain/timeclock"
	"github.com/stretchr/testify/assert"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func tsPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := ts(t, value)
	return &parsed
}

func TestPairedDuration_SimpleShift(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T17:00:00Z")},
	}

	assert.Equal(t, 8*time.Hour, PairedDuration(events))
}

func TestPairedDuration_UnorderedInput(t *testing.T) {
	t.Parallel()

	// Arrival order is not guaranteed; pairing must sort first.
	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T17:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
	}

	assert.Equal(t, 8*time.Hour, PairedDuration(events))
}

func TestPairedDuration_MultiplePairs(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T12:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T13:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T18:00:00Z")},
	}

	assert.Equal(t, 8*time.Hour, PairedDuration(events))
}

func TestPairedDuration_UnmatchedTrailingClockIn(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T12:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T13:00:00Z")},
	}

	assert.Equal(t, 3*time.Hour, PairedDuration(events))
}

func TestPairedDuration_ClockOutWithoutClockIn(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
	}

	assert.Equal(t, time.Duration(0), PairedDuration(events))
}

func TestPairedDuration_DuplicateClockInsKeepFirst(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T10:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T17:00:00Z")},
	}

	assert.Equal(t, 8*time.Hour, PairedDuration(events))
}

func TestPairedDuration_NeverNegative(t *testing.T) {
	t.Parallel()

	// Overlapping and reversed events must clamp to zero, never go
	// negative.
	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T17:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T17:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T18:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T18:00:00Z")},
	}

	assert.GreaterOrEqual(t, int64(PairedDuration(events)), int64(0))
}

func TestPairedDuration_Deterministic(t *testing.T) {
	t.Parallel()

	events := []timeclock.ClockEvent{
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T12:30:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T09:15:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockIn, Timestamp: ts(t, "2024-06-01T13:00:00Z")},
		{UserID: "v1", Action: timeclock.ActionClockOut, Timestamp: ts(t, "2024-06-01T17:45:00Z")},
	}

	first := PairedDuration(events)
	second := PairedDuration(events)
	assert.Equal(t, first, second)
}

func TestSpanDuration_EndpointsAndMeals(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn:        tsPtr(t, "2024-06-01T09:00:00Z"),
		LastOut:        tsPtr(t, "2024-06-01T18:00:00Z"),
		FirstMealStart: tsPtr(t, "2024-06-01T12:00:00Z"),
		LastMealEnd:    tsPtr(t, "2024-06-01T12:30:00Z"),
	}

	assert.Equal(t, 8*time.Hour+30*time.Minute, SpanDuration(span, 0))
}

func TestSpanDuration_TwoMeals(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn:         tsPtr(t, "2024-06-01T08:00:00Z"),
		LastOut:         tsPtr(t, "2024-06-01T20:00:00Z"),
		FirstMealStart:  tsPtr(t, "2024-06-01T12:00:00Z"),
		LastMealEnd:     tsPtr(t, "2024-06-01T12:30:00Z"),
		SecondMealStart: tsPtr(t, "2024-06-01T17:00:00Z"),
		SecondMealEnd:   tsPtr(t, "2024-06-01T17:30:00Z"),
	}

	assert.Equal(t, 11*time.Hour, SpanDuration(span, 0))
}

func TestSpanDuration_FallbackWhenEndpointMissing(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn: tsPtr(t, "2024-06-01T09:00:00Z"),
	}

	assert.Equal(t, 5*time.Hour, SpanDuration(span, 5*time.Hour))
}

func TestSpanDuration_ReversedEndpointsClampToZero(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn: tsPtr(t, "2024-06-01T18:00:00Z"),
		LastOut: tsPtr(t, "2024-06-01T09:00:00Z"),
	}

	assert.Equal(t, time.Duration(0), SpanDuration(span, 0))
}

func TestSpanDuration_MealLongerThanShiftClampsToZero(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn:        tsPtr(t, "2024-06-01T09:00:00Z"),
		LastOut:        tsPtr(t, "2024-06-01T10:00:00Z"),
		FirstMealStart: tsPtr(t, "2024-06-01T09:00:00Z"),
		LastMealEnd:    tsPtr(t, "2024-06-01T12:00:00Z"),
	}

	assert.Equal(t, time.Duration(0), SpanDuration(span, 0))
}

func TestSpanDuration_ReversedMealIgnored(t *testing.T) {
	t.Parallel()

	span := timeclock.ShiftSpan{
		FirstIn:        tsPtr(t, "2024-06-01T09:00:00Z"),
		LastOut:        tsPtr(t, "2024-06-01T17:00:00Z"),
		FirstMealStart: tsPtr(t, "2024-06-01T12:30:00Z"),
		LastMealEnd:    tsPtr(t, "2024-06-01T12:00:00Z"),
	}

	assert.Equal(t, 8*time.Hour, SpanDuration(span, 0))
}

func TestHoursFromDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8", HoursFromDuration(8*time.Hour).String())
	assert.Equal(t, "8.5", HoursFromDuration(8*time.Hour+30*time.Minute).String())
	assert.Equal(t, "0", HoursFromDuration(0).String())
	assert.Equal(t, "0", HoursFromDuration(-time.Hour).String())
}

func TestDisplayHours_AddsLeadTime(t *testing.T) {
	t.Parallel()

	// 8h worked with a clock-in reports as 8.5h; the lead time is
	// additive only and never feeds pay formulas.
	assert.Equal(t, "8.5", DisplayHours(8*time.Hour, true).String())
}

func TestDisplayHours_NoLeadTimeWithoutWork(t *testing.T) {
	t.Parallel()

	assert.True(t, DisplayHours(0, true).IsZero())
	assert.True(t, DisplayHours(0, false).IsZero())
}

func TestDisplayHours_NoLeadTimeWithoutClockIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "8", DisplayHours(8*time.Hour, false).String())
}
