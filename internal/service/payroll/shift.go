package payroll

import (
	"sort"
	"time"

	"github.com/eventops/eventops-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
)

// PaidLeadTime is the fixed gate/phone prep offset added to worked time for
// the reported hours figure. It is additive only and never enters the pay
// formulas, which run on the raw worked span.
const PaidLeadTime = 30 * time.Minute

var msPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))

// PairedDuration totals worked time from raw clock events by pairing each
// clock-in with the next clock-out. Events are sorted by timestamp first;
// reversed pairs contribute zero and an unmatched trailing clock-in
// contributes nothing.
func PairedDuration(events []timeclock.ClockEvent) time.Duration {
	sorted := make([]timeclock.ClockEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var total time.Duration
	var openIn *time.Time
	for i := range sorted {
		switch sorted[i].Action {
		case timeclock.ActionClockIn:
			if openIn == nil {
				ts := sorted[i].Timestamp
				openIn = &ts
			}
		case timeclock.ActionClockOut:
			if openIn != nil {
				if d := sorted[i].Timestamp.Sub(*openIn); d > 0 {
					total += d
				}
				openIn = nil
			}
		}
	}
	return total
}

// SpanDuration totals worked time from a precomputed shift span: last-out
// minus first-in when both ends exist, otherwise the paired-events
// fallback, minus each positive meal window. The running total is clamped
// to zero after every subtraction so a malformed span degrades to zero
// contribution instead of going negative.
func SpanDuration(span timeclock.ShiftSpan, fallback time.Duration) time.Duration {
	var total time.Duration
	if span.FirstIn != nil && span.LastOut != nil {
		total = span.LastOut.Sub(*span.FirstIn)
	} else {
		total = fallback
	}
	if total < 0 {
		total = 0
	}

	total = subtractMeal(total, span.FirstMealStart, span.LastMealEnd)
	total = subtractMeal(total, span.SecondMealStart, span.SecondMealEnd)
	return total
}

func subtractMeal(total time.Duration, start, end *time.Time) time.Duration {
	if start == nil || end == nil {
		return total
	}
	meal := end.Sub(*start)
	if meal <= 0 {
		return total
	}
	total -= meal
	if total < 0 {
		return 0
	}
	return total
}

// HoursFromDuration converts a worked duration to decimal hours at
// millisecond precision.
func HoursFromDuration(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(d.Milliseconds()).Div(msPerHour)
}

// DisplayHours is the hours figure reported on the payment record: raw
// worked hours plus the paid lead time whenever any positive worked time
// and a clock-in exist.
func DisplayHours(worked time.Duration, hasClockIn bool) decimal.Decimal {
	hours := HoursFromDuration(worked)
	if worked > 0 && hasClockIn {
		hours = hours.Add(HoursFromDuration(PaidLeadTime))
	}
	return hours
}
