// Package staterate resolves per-state wage rules: the base hourly rate,
// whether the rest-break stipend applies, and whether commission is paid as
// a flat pool split instead of the default subtract-extended-pay formula.
package staterate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Rule is the wage configuration for a single state.
type Rule struct {
	BaseRate         decimal.Decimal
	RestBreakApplies bool
	FlatCommission   bool
}

// Table answers wage-rule lookups by two-letter state code. Lookups never
// fail: an unknown state resolves to the fallback rule so a bad state code
// cannot abort payroll for an entire event.
type Table struct {
	rules    map[string]Rule
	fallback Rule
}

// defaultRules carries the built-in table. DB-loaded overrides are merged
// on top at construction time.
func defaultRules() map[string]Rule {
	rate := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return map[string]Rule{
		"CA": {BaseRate: rate("17.28"), RestBreakApplies: true},
		"WA": {BaseRate: rate("16.66"), RestBreakApplies: true},
		"NV": {BaseRate: rate("12.00"), RestBreakApplies: true},
		"OR": {BaseRate: rate("14.70"), RestBreakApplies: true},
		"CO": {BaseRate: rate("14.81"), RestBreakApplies: true},
		// Flat-commission states: pool split with no multiplier.
		"AZ": {BaseRate: rate("14.70"), RestBreakApplies: false, FlatCommission: true},
		"NY": {BaseRate: rate("16.50"), RestBreakApplies: true, FlatCommission: true},
		// No rest-break stipend.
		"FL": {BaseRate: rate("13.00"), RestBreakApplies: false},
		"TX": {BaseRate: rate("12.50"), RestBreakApplies: false},
	}
}

// NewTable builds a table from the built-in rules, a fallback base rate for
// unknown states, and optional overrides (normally loaded from the
// state_wage_rules table at boot). Override codes are normalized.
func NewTable(fallbackRate decimal.Decimal, overrides map[string]Rule) *Table {
	rules := defaultRules()
	for code, rule := range overrides {
		code = Normalize(code)
		if code == "" {
			continue
		}
		rules[code] = rule
	}
	return &Table{
		rules: rules,
		fallback: Rule{
			BaseRate:         fallbackRate,
			RestBreakApplies: true,
			FlatCommission:   false,
		},
	}
}

// Normalize trims and upper-cases a state code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the rule for code and whether the code was configured.
// Unknown codes return the fallback rule with found=false so callers can
// attach a warning.
func (t *Table) Lookup(code string) (Rule, bool) {
	rule, ok := t.rules[Normalize(code)]
	if !ok {
		return t.fallback, false
	}
	return rule, true
}

// BaseRate returns the hourly base rate for code, falling back for unknown
// states.
func (t *Table) BaseRate(code string) decimal.Decimal {
	rule, _ := t.Lookup(code)
	return rule.BaseRate
}

// RestBreakApplies reports whether the rest-break stipend is owed in code.
func (t *Table) RestBreakApplies(code string) bool {
	rule, _ := t.Lookup(code)
	return rule.RestBreakApplies
}

// UsesFlatCommissionFormula reports whether code pays commission as an
// equal pool split with no multiplier.
func (t *Table) UsesFlatCommissionFormula(code string) bool {
	rule, _ := t.Lookup(code)
	return rule.FlatCommission
}
