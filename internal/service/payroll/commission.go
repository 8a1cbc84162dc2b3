package payroll

import (
	"github.com/eventops/eventops-backend-go/internal/domain/payroll"
	"github.com/eventops/eventops-backend-go/internal/domain/roster"
	"github.com/shopspring/decimal"
)

var (
	overtimeMultiplier = decimal.RequireFromString("1.5")
	legacyMinimumPay   = decimal.NewFromInt(150)

	restBreakLong  = decimal.NewFromInt(12)
	restBreakShort = decimal.NewFromInt(9)
	restBreakTier  = decimal.NewFromInt(10)

	roundingCoarseAt = decimal.NewFromInt(1000)
)

// CommissionInput carries everything the per-vendor pay formula consumes.
// WorkedHours is the raw shift span and feeds every formula; DisplayHours
// includes the paid lead time and is only reported.
type CommissionInput struct {
	VendorID     string
	VendorName   string
	Division     roster.Division
	WorkedHours  decimal.Decimal
	DisplayHours decimal.Decimal
	BaseRate     decimal.Decimal

	FlatCommission   bool
	RestBreakApplies bool

	TotalCommissionPool decimal.Decimal
	EligibleVendorCount int
	TotalTips           decimal.Decimal
	TotalEligibleHours  decimal.Decimal
	AdjustmentNet       decimal.Decimal

	// LegacyMinimumGuarantee selects the historical $150-floor final
	// commission formula used by the live-synthesis path.
	LegacyMinimumGuarantee bool
}

// ComputePay runs the per-vendor commission pay formula.
//
// Flat-commission states pay extended time at the straight base rate and an
// equal pool split; all other states pay extended time at 1.5x and only the
// portion of the pool share exceeding extended pay, with slivers smaller
// than the extended amount zeroed out. The final commission floors at the
// extended amount; trailers crew never participates in the pool or tips
// but keeps extended pay for hours worked.
func ComputePay(in CommissionInput) payroll.VendorPaymentRecord {
	hours := in.WorkedHours
	if hours.IsNegative() {
		hours = decimal.Zero
	}
	isTrailers := in.Division.IsTrailers()

	// No worked time means every pay field stays zero; only a manual
	// correction, if one exists, survives into gross.
	if !hours.IsPositive() {
		return payroll.VendorPaymentRecord{
			VendorID:             in.VendorID,
			VendorName:           in.VendorName,
			Division:             string(in.Division),
			ActualHours:          decimal.Zero,
			RegularPay:           decimal.Zero,
			CommissionAmount:     decimal.Zero,
			TotalFinalCommission: decimal.Zero,
			Tips:                 decimal.Zero,
			RestBreak:            decimal.Zero,
			AdjustmentAmount:     RoundMoney(in.AdjustmentNet),
			TotalGrossPay:        RoundMoney(in.AdjustmentNet),
		}
	}

	extended := hours.Mul(in.BaseRate)
	if !in.FlatCommission {
		extended = extended.Mul(overtimeMultiplier)
	}

	perVendorShare := decimal.Zero
	if in.EligibleVendorCount > 0 {
		perVendorShare = in.TotalCommissionPool.Div(decimal.NewFromInt(int64(in.EligibleVendorCount)))
	}

	commission := decimal.Zero
	if !isTrailers && in.EligibleVendorCount > 0 {
		if in.FlatCommission {
			commission = perVendorShare
		} else {
			commission = perVendorShare.Sub(extended)
			if commission.IsNegative() {
				commission = decimal.Zero
			}
			// A commission smaller than the base differential is a sliver
			// not worth paying out.
			if commission.IsPositive() && commission.LessThan(extended) {
				commission = decimal.Zero
			}
		}
	}

	finalCommission := extended
	if in.LegacyMinimumGuarantee {
		finalCommission = extended.Add(commission)
		if finalCommission.LessThan(legacyMinimumPay) {
			finalCommission = legacyMinimumPay
		}
	} else if !isTrailers && perVendorShare.GreaterThan(finalCommission) {
		finalCommission = perVendorShare
	}

	tips := decimal.Zero
	if !isTrailers && in.TotalEligibleHours.IsPositive() {
		tips = in.TotalTips.Mul(hours).Div(in.TotalEligibleHours)
	}

	restBreak := decimal.Zero
	if in.RestBreakApplies {
		if hours.GreaterThan(restBreakTier) {
			restBreak = restBreakLong
		} else {
			restBreak = restBreakShort
		}
	}

	gross := finalCommission.Add(tips).Add(restBreak).Add(in.AdjustmentNet)

	return payroll.VendorPaymentRecord{
		VendorID:             in.VendorID,
		VendorName:           in.VendorName,
		Division:             string(in.Division),
		ActualHours:          in.DisplayHours.Round(2),
		RegularPay:           RoundMoney(extended),
		CommissionAmount:     RoundMoney(commission),
		TotalFinalCommission: RoundMoney(finalCommission),
		Tips:                 RoundMoney(tips),
		RestBreak:            RoundMoney(restBreak),
		AdjustmentAmount:     RoundMoney(in.AdjustmentNet),
		TotalGrossPay:        RoundMoney(gross),
	}
}

// RoundMoney applies the tiered rounding rule: amounts under 1000 in
// absolute value round to the nearest cent, larger amounts round to the
// nearest hundred. Historical payouts depend on the coarse tier; do not
// tighten it.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	if d.Abs().GreaterThanOrEqual(roundingCoarseAt) {
		return d.Div(oneHundred).Round(0).Mul(oneHundred)
	}
	return d.Round(2)
}
