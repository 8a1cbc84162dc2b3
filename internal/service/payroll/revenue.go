package payroll

import (
	"fmt"

	"github.com/eventops/eventops-backend-go/internal/domain/event"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeRevenueSplit derives the event-level revenue breakdown from the
// financial inputs. Share percentages are never auto-normalized: a sum
// other than 100 comes back as a warning alongside the computed shares.
func ComputeRevenueSplit(fin event.Financials) (event.RevenueSplit, []string) {
	var warnings []string

	totalSales := fin.TicketSalesGross.Sub(fin.Tips)
	if totalSales.IsNegative() {
		totalSales = decimal.Zero
	}

	var taxAmount decimal.Decimal
	if fin.TaxAmountOverride != nil {
		taxAmount = *fin.TaxAmountOverride
	} else {
		taxAmount = totalSales.Mul(fin.TaxRatePercent).Div(oneHundred)
	}
	if taxAmount.IsNegative() {
		taxAmount = decimal.Zero
	}

	netSales := totalSales.Sub(taxAmount)
	if netSales.IsNegative() {
		netSales = decimal.Zero
	}

	if shareSum := fin.ShareSum(); !shareSum.Equal(oneHundred) {
		warnings = append(warnings, fmt.Sprintf(
			"revenue split percentages total %s%%, expected 100%%", shareSum.String()))
	}

	return event.RevenueSplit{
		GrossCollected: RoundMoney(fin.TicketSalesGross),
		TipsRemoved:    RoundMoney(fin.Tips),
		TotalSales:     RoundMoney(totalSales),
		TaxAmount:      RoundMoney(taxAmount),
		NetSales:       RoundMoney(netSales),
		ArtistShare:    RoundMoney(netSales.Mul(fin.ArtistSharePercent).Div(oneHundred)),
		VenueShare:     RoundMoney(netSales.Mul(fin.VenueSharePercent).Div(oneHundred)),
		OperatorShare:  RoundMoney(netSales.Mul(fin.OperatorSharePercent).Div(oneHundred)),
	}, warnings
}

// CommissionPool is the share of net sales reserved for vendor commission.
func CommissionPool(fin event.Financials, netSales decimal.Decimal) decimal.Decimal {
	return netSales.Mul(fin.CommissionPoolFraction)
}
