package roster

import (
	"strings"
	"time"
)

// Division classifies a team member for commission and tip participation.
// It is resolved once when the roster row is read; nothing downstream
// re-parses the raw string.
type Division string

const (
	DivisionVendor   Division = "vendor"
	DivisionBoth     Division = "both"
	DivisionTrailers Division = "trailers"
	DivisionOther    Division = "other"
)

// ParseDivision normalizes a raw division string into the closed set.
// Anything unrecognized (including empty) maps to DivisionOther, which is
// still commission-eligible so nobody is silently excluded from pay by a
// typo in their roster row.
func ParseDivision(raw string) Division {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "vendor":
		return DivisionVendor
	case "both":
		return DivisionBoth
	case "trailers":
		return DivisionTrailers
	default:
		return DivisionOther
	}
}

// CommissionEligible reports whether the division participates in the
// commission pool and tip proration. Only trailers are excluded.
func (d Division) CommissionEligible() bool {
	return d != DivisionTrailers
}

// IsTrailers reports whether the division is the trailers crew, which is
// paid base extended pay only.
func (d Division) IsTrailers() bool {
	return d == DivisionTrailers
}

// MemberStatus is informational to the payroll engine: pending and declined
// members are computed like confirmed ones unless a caller filters first.
type MemberStatus string

const (
	StatusConfirmed MemberStatus = "confirmed"
	StatusPending   MemberStatus = "pending"
	StatusDeclined  MemberStatus = "declined"
)

// TeamMember is one rostered vendor on an event.
type TeamMember struct {
	VendorID  string
	EventID   string
	Name      string
	Division  Division
	Status    MemberStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
