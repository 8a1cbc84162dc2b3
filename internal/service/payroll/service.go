package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/eventops/eventops-backend-go/internal/config"
	"github.com/eventops/eventops-backend-go/internal/domain/event"
	"github.com/eventops/eventops-backend-go/internal/domain/payroll"
	"github.com/eventops/eventops-backend-go/internal/domain/roster"
	"github.com/eventops/eventops-backend-go/internal/domain/timeclock"
	"github.com/eventops/eventops-backend-go/internal/pkg/staterate"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency caps how many events a batch request computes at once.
const batchConcurrency = 4

type PayrollServiceImpl struct {
	eventRepo   event.EventRepository
	rosterRepo  roster.RosterRepository
	timeRepo    timeclock.TimeEntryRepository
	paymentRepo payroll.PaymentRepository
	rates       *staterate.Table
	cfg         config.PayrollConfig
}

func NewPayrollService(
	eventRepo event.EventRepository,
	rosterRepo roster.RosterRepository,
	timeRepo timeclock.TimeEntryRepository,
	paymentRepo payroll.PaymentRepository,
	rates *staterate.Table,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		eventRepo:   eventRepo,
		rosterRepo:  rosterRepo,
		timeRepo:    timeRepo,
		paymentRepo: paymentRepo,
		rates:       rates,
		cfg:         cfg,
	}
}

// vendorShift is one vendor's resolved worked time for the event.
type vendorShift struct {
	worked     time.Duration
	hasClockIn bool
}

// ComputeEventPayroll assembles the full payment result for one event. Data
// quality problems degrade to zeroed values with warnings; only the event
// lookup itself can fail hard.
func (s *PayrollServiceImpl) ComputeEventPayroll(ctx context.Context, eventID string) (payroll.EventPayroll, error) {
	result := payroll.EventPayroll{
		EventID:        eventID,
		VendorPayments: []payroll.VendorPaymentRecord{},
	}

	ev, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			result.Warnings = append(result.Warnings, "event not found, returning empty payroll")
			return result, nil
		}
		return payroll.EventPayroll{}, fmt.Errorf("failed to load event %s: %w", eventID, err)
	}

	members, err := s.rosterRepo.GetByEventID(ctx, eventID)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to load roster: %v", err))
		return result, nil
	}
	if len(members) == 0 {
		result.Warnings = append(result.Warnings, "no rostered team members for event")
		return result, nil
	}

	vendorIDs := make([]string, 0, len(members))
	for _, m := range members {
		vendorIDs = append(vendorIDs, m.VendorID)
	}

	// The remaining reads are mutually independent; fan them out and join
	// before any computation starts.
	var (
		fin         event.Financials
		finErr      error
		adjustments map[string]payroll.PaymentAdjustment
		adjErr      error
		rows        []payroll.VendorPaymentRow
		rowsErr     error
		clockEvents []timeclock.ClockEvent
		clockErr    error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fin, finErr = s.eventRepo.GetFinancials(gctx, eventID)
		return nil
	})
	g.Go(func() error {
		adjustments, adjErr = s.paymentRepo.GetAdjustments(gctx, eventID)
		return nil
	})
	g.Go(func() error {
		rows, rowsErr = s.paymentRepo.GetVendorPaymentRows(gctx, eventID)
		return nil
	})
	g.Go(func() error {
		from, to := timeclock.DayWindowUTC(ev.Date)
		clockEvents, clockErr = s.timeRepo.GetEventsForWindow(gctx, vendorIDs, from, to)
		return nil
	})
	_ = g.Wait()

	if finErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to load financials, computing with zeros: %v", finErr))
		fin = event.Financials{EventID: eventID}
	}
	if adjErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to load adjustments, computing without them: %v", adjErr))
		adjustments = map[string]payroll.PaymentAdjustment{}
	}
	if rowsErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to load persisted payment rows, synthesizing from clock events: %v", rowsErr))
		rows = nil
	}
	if clockErr != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to load clock events: %v", clockErr))
		clockEvents = nil
	}

	shifts := resolveShifts(members, rows, clockEvents)

	rule, known := s.rates.Lookup(ev.State)
	if !known {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"no wage rule configured for state %q, using default base rate %s",
			ev.State, rule.BaseRate.String()))
	}

	split, splitWarnings := ComputeRevenueSplit(fin)
	result.Warnings = append(result.Warnings, splitWarnings...)
	result.RevenueSplit = split

	pool := CommissionPool(fin, split.NetSales)

	// Denominator for the pool split: eligible vendors who actually
	// worked, floored at the roster size so a day of missing clock data
	// cannot divide by zero.
	eligibleCount := 0
	totalEligibleHours := decimal.Zero
	for _, m := range members {
		if m.Division.IsTrailers() {
			continue
		}
		hours := HoursFromDuration(shifts[m.VendorID].worked)
		totalEligibleHours = totalEligibleHours.Add(hours)
		if hours.IsPositive() {
			eligibleCount++
		}
	}
	if eligibleCount == 0 {
		eligibleCount = len(members)
	}

	// The legacy minimum-guarantee formula only ever ran on the
	// live-synthesis path, so it stays confined to it.
	synthesized := len(rows) == 0
	legacy := s.cfg.LegacyMinimumGuarantee && synthesized

	for _, m := range members {
		shift := shifts[m.VendorID]
		adjNet := decimal.Zero
		if adj, ok := adjustments[m.VendorID]; ok {
			adjNet = adj.Net()
		}

		record := ComputePay(CommissionInput{
			VendorID:               m.VendorID,
			VendorName:             m.Name,
			Division:               m.Division,
			WorkedHours:            HoursFromDuration(shift.worked),
			DisplayHours:           DisplayHours(shift.worked, shift.hasClockIn),
			BaseRate:               rule.BaseRate,
			FlatCommission:         rule.FlatCommission,
			RestBreakApplies:       rule.RestBreakApplies,
			TotalCommissionPool:    pool,
			EligibleVendorCount:    eligibleCount,
			TotalTips:              fin.Tips,
			TotalEligibleHours:     totalEligibleHours,
			AdjustmentNet:          adjNet,
			LegacyMinimumGuarantee: legacy,
		})
		result.VendorPayments = append(result.VendorPayments, record)
	}

	sort.Slice(result.VendorPayments, func(i, j int) bool {
		return result.VendorPayments[i].VendorID < result.VendorPayments[j].VendorID
	})

	return result, nil
}

// resolveShifts maps each rostered vendor to a worked duration, preferring
// persisted payment rows and falling back to pairing raw clock events.
func resolveShifts(
	members []roster.TeamMember,
	rows []payroll.VendorPaymentRow,
	clockEvents []timeclock.ClockEvent,
) map[string]vendorShift {
	eventsByVendor := make(map[string][]timeclock.ClockEvent)
	for _, ce := range clockEvents {
		eventsByVendor[ce.UserID] = append(eventsByVendor[ce.UserID], ce)
	}

	spans := make(map[string]timeclock.ShiftSpan, len(rows))
	for _, row := range rows {
		spans[row.VendorID] = row.Span
	}

	shifts := make(map[string]vendorShift, len(members))
	for _, m := range members {
		evs := eventsByVendor[m.VendorID]
		hasClockIn := false
		for _, ce := range evs {
			if ce.Action == timeclock.ActionClockIn {
				hasClockIn = true
				break
			}
		}

		if span, ok := spans[m.VendorID]; ok {
			shifts[m.VendorID] = vendorShift{
				worked:     SpanDuration(span, PairedDuration(evs)),
				hasClockIn: span.HasClockIn() || hasClockIn,
			}
			continue
		}
		shifts[m.VendorID] = vendorShift{
			worked:     PairedDuration(evs),
			hasClockIn: hasClockIn,
		}
	}
	return shifts
}

// ComputeEventPayrollBatch computes payroll for several events. Events are
// mutually independent: one failing event degrades to an empty result with
// a warning and never blocks the rest.
func (s *PayrollServiceImpl) ComputeEventPayrollBatch(ctx context.Context, eventIDs []string) (map[string]payroll.EventPayroll, error) {
	results := make(map[string]payroll.EventPayroll, len(eventIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for _, eventID := range eventIDs {
		eventID := eventID
		g.Go(func() error {
			res, err := s.ComputeEventPayroll(gctx, eventID)
			if err != nil {
				res = payroll.EventPayroll{
					EventID:        eventID,
					VendorPayments: []payroll.VendorPaymentRecord{},
					Warnings:       []string{fmt.Sprintf("payroll computation failed: %v", err)},
				}
			}
			mu.Lock()
			results[eventID] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetRevenueSplit computes just the event-level revenue breakdown.
func (s *PayrollServiceImpl) GetRevenueSplit(ctx context.Context, eventID string) (event.RevenueSplit, []string, error) {
	fin, err := s.eventRepo.GetFinancials(ctx, eventID)
	if err != nil {
		if errors.Is(err, event.ErrFinancialsNotFound) || errors.Is(err, event.ErrEventNotFound) {
			return event.RevenueSplit{}, nil, err
		}
		return event.RevenueSplit{}, nil, fmt.Errorf("failed to load financials for event %s: %w", eventID, err)
	}

	split, warnings := ComputeRevenueSplit(fin)
	return split, warnings, nil
}

// SaveAdjustment upserts a vendor's manual correction. A persistence
// failure is reported to the caller; previously computed totals held by the
// UI are unaffected since nothing here mutates engine state.
func (s *PayrollServiceImpl) SaveAdjustment(ctx context.Context, req payroll.SaveAdjustmentRequest) (payroll.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	members, err := s.rosterRepo.GetByEventID(ctx, req.EventID)
	if err != nil {
		return payroll.AdjustmentResponse{}, fmt.Errorf("failed to load roster for event %s: %w", req.EventID, err)
	}
	onRoster := false
	for _, m := range members {
		if m.VendorID == req.VendorID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		return payroll.AdjustmentResponse{}, payroll.ErrVendorNotOnRoster
	}

	adj := payroll.PaymentAdjustment{
		EventID:  req.EventID,
		VendorID: req.VendorID,
		Note:     req.Note,
	}
	if req.Adjustment != nil {
		adj.Adjustment = *req.Adjustment
	}
	if req.Reimbursement != nil {
		adj.Reimbursement = *req.Reimbursement
	}

	saved, err := s.paymentRepo.UpsertAdjustment(ctx, adj)
	if err != nil {
		return payroll.AdjustmentResponse{}, fmt.Errorf("%w: %v", payroll.ErrAdjustmentSaveFailed, err)
	}

	return payroll.AdjustmentResponse{
		EventID:       saved.EventID,
		VendorID:      saved.VendorID,
		Adjustment:    saved.Adjustment,
		Reimbursement: saved.Reimbursement,
		Net:           saved.Net(),
		Note:          saved.Note,
	}, nil
}
