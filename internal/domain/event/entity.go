package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the scheduling record the engine computes payroll against.
type Event struct {
	ID        string
	Name      string
	Date      time.Time
	State     string
	VenueID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Financials are the per-event money inputs. They are read fresh per
// computation and passed into the engine as an immutable value.
type Financials struct {
	EventID                string
	TicketSalesGross       decimal.Decimal
	Tips                   decimal.Decimal
	TaxRatePercent         decimal.Decimal
	TaxAmountOverride      *decimal.Decimal
	CommissionPoolFraction decimal.Decimal
	ArtistSharePercent     decimal.Decimal
	VenueSharePercent      decimal.Decimal
	OperatorSharePercent   decimal.Decimal
	UpdatedAt              time.Time
}

// ShareSum returns artist + venue + operator percentages. A sum other than
// 100 is tolerated and surfaced as a warning, never an error.
func (f Financials) ShareSum() decimal.Decimal {
	return f.ArtistSharePercent.Add(f.VenueSharePercent).Add(f.OperatorSharePercent)
}

// RevenueSplit is the event-level revenue breakdown.
type RevenueSplit struct {
	GrossCollected decimal.Decimal `json:"gross_collected"`
	TipsRemoved    decimal.Decimal `json:"tips_removed"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	NetSales       decimal.Decimal `json:"net_sales"`
	ArtistShare    decimal.Decimal `json:"artist_share"`
	VenueShare     decimal.Decimal `json:"venue_share"`
	OperatorShare  decimal.Decimal `json:"operator_share"`
}
