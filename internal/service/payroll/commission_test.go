package payroll

import (
	"testing"

	"github.com/eventops/eventops-backend-go/internal/domain/roster"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// baseInput is an 8-hour CA vendor at the CA base rate with a modest pool.
func baseInput() CommissionInput {
	return CommissionInput{
		VendorID:            "v1",
		Division:            roster.DivisionVendor,
		WorkedHours:         dec("8"),
		DisplayHours:        dec("8.5"),
		BaseRate:            dec("17.28"),
		FlatCommission:      false,
		RestBreakApplies:    true,
		TotalCommissionPool: dec("400"),
		EligibleVendorCount: 5,
		TotalTips:           dec("0"),
		TotalEligibleHours:  dec("40"),
		AdjustmentNet:       decimal.Zero,
	}
}

func TestComputePay_ExtendedAmountDefaultState(t *testing.T) {
	t.Parallel()

	record := ComputePay(baseInput())

	// 8h * 17.28 * 1.5
	assert.True(t, record.RegularPay.Equal(dec("207.36")), "regular pay %s", record.RegularPay)
	assert.True(t, record.ActualHours.Equal(dec("8.5")))
}

func TestComputePay_ExtendedAmountFlatState(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.FlatCommission = true
	in.RestBreakApplies = false

	record := ComputePay(in)

	// No 1.5x multiplier in flat-commission states: 8h * 17.28.
	assert.True(t, record.RegularPay.Equal(dec("138.24")), "regular pay %s", record.RegularPay)
}

func TestComputePay_PerVendorShare(t *testing.T) {
	t.Parallel()

	// $10,000 net at 4% pool over 5 eligible vendors = $80 each. Below
	// the extended amount, so the commission zeroes out but the final
	// commission floors at extended pay.
	in := baseInput()
	in.TotalCommissionPool = dec("400")
	in.EligibleVendorCount = 5

	record := ComputePay(in)

	assert.True(t, record.CommissionAmount.IsZero())
	assert.True(t, record.TotalFinalCommission.Equal(dec("207.36")))
}

func TestComputePay_CommissionAboveExtended(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.TotalCommissionPool = dec("2500")
	in.EligibleVendorCount = 5 // share 500

	record := ComputePay(in)

	// 500 - 207.36 = 292.64, larger than extended so it survives the
	// sliver rule; final commission is the share itself.
	assert.True(t, record.CommissionAmount.Equal(dec("292.64")), "commission %s", record.CommissionAmount)
	assert.True(t, record.TotalFinalCommission.Equal(dec("500")))
}

func TestComputePay_AntiSliverRule(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.TotalCommissionPool = dec("1500")
	in.EligibleVendorCount = 5 // share 300

	record := ComputePay(in)

	// 300 - 207.36 = 92.64 is positive but smaller than the extended
	// amount, so it is forced to zero. The share still wins the final
	// commission max.
	assert.True(t, record.CommissionAmount.IsZero())
	assert.True(t, record.TotalFinalCommission.Equal(dec("300")))
}

func TestComputePay_FlatStateEqualSplit(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.FlatCommission = true
	in.RestBreakApplies = false
	in.TotalCommissionPool = dec("500")
	in.EligibleVendorCount = 5

	record := ComputePay(in)

	// Flat states pay the full share with no subtraction.
	assert.True(t, record.CommissionAmount.Equal(dec("100")))
	assert.True(t, record.RegularPay.Equal(dec("138.24")))
}

func TestComputePay_CommissionFloorInvariant(t *testing.T) {
	t.Parallel()

	pools := []string{"0", "100", "400", "1500", "2500", "9000"}
	for _, pool := range pools {
		in := baseInput()
		in.TotalCommissionPool = dec(pool)

		record := ComputePay(in)

		assert.True(t, record.TotalFinalCommission.GreaterThanOrEqual(record.RegularPay),
			"pool %s: final %s < regular %s", pool, record.TotalFinalCommission, record.RegularPay)
	}
}

func TestComputePay_TrailersExcludedFromPoolAndTips(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.Division = roster.DivisionTrailers
	in.TotalCommissionPool = dec("5000")
	in.TotalTips = dec("300")

	record := ComputePay(in)

	assert.True(t, record.CommissionAmount.IsZero())
	assert.True(t, record.Tips.IsZero())
	// Base extended pay is kept.
	assert.True(t, record.RegularPay.Equal(dec("207.36")))
	assert.True(t, record.TotalFinalCommission.Equal(dec("207.36")))
}

func TestComputePay_TipProration(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.TotalTips = dec("500")
	in.WorkedHours = dec("8")
	in.TotalEligibleHours = dec("20")

	record := ComputePay(in)

	assert.True(t, record.Tips.Equal(dec("200")), "tips %s", record.Tips)
}

func TestComputePay_TipsZeroWhenNoEligibleHours(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.TotalTips = dec("500")
	in.TotalEligibleHours = decimal.Zero

	record := ComputePay(in)

	assert.True(t, record.Tips.IsZero())
}

func TestComputePay_RestBreakTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hours   string
		applies bool
		want    string
	}{
		{"short shift", "8", true, "9"},
		{"exactly ten hours", "10", true, "9"},
		{"long shift", "10.5", true, "12"},
		{"no rest break state", "10.5", false, "0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := baseInput()
			in.WorkedHours = dec(tc.hours)
			in.RestBreakApplies = tc.applies

			record := ComputePay(in)

			assert.True(t, record.RestBreak.Equal(dec(tc.want)),
				"rest break %s, want %s", record.RestBreak, tc.want)
		})
	}
}

func TestComputePay_ZeroHoursZeroesEverything(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.WorkedHours = decimal.Zero
	in.DisplayHours = decimal.Zero
	in.TotalCommissionPool = dec("5000")
	in.TotalTips = dec("500")

	record := ComputePay(in)

	assert.True(t, record.ActualHours.IsZero())
	assert.True(t, record.RegularPay.IsZero())
	assert.True(t, record.CommissionAmount.IsZero())
	assert.True(t, record.TotalFinalCommission.IsZero())
	assert.True(t, record.Tips.IsZero())
	assert.True(t, record.RestBreak.IsZero())
	assert.True(t, record.TotalGrossPay.IsZero())
}

func TestComputePay_ZeroHoursKeepsAdjustment(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.WorkedHours = decimal.Zero
	in.DisplayHours = decimal.Zero
	in.AdjustmentNet = dec("45.50")

	record := ComputePay(in)

	assert.True(t, record.AdjustmentAmount.Equal(dec("45.50")))
	assert.True(t, record.TotalGrossPay.Equal(dec("45.50")))
}

func TestComputePay_GrossPaySum(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.TotalTips = dec("500")
	in.TotalEligibleHours = dec("20")
	in.AdjustmentNet = dec("35")

	record := ComputePay(in)

	// 207.36 final + 200 tips + 9 rest break + 35 adjustment.
	assert.True(t, record.TotalGrossPay.Equal(dec("451.36")), "gross %s", record.TotalGrossPay)
}

func TestComputePay_LegacyMinimumGuarantee(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.LegacyMinimumGuarantee = true
	in.WorkedHours = dec("1")
	in.DisplayHours = dec("1.5")
	in.TotalCommissionPool = decimal.Zero

	record := ComputePay(in)

	// extended = 1 * 17.28 * 1.5 = 25.92; the legacy path floors the
	// final commission at $150.
	assert.True(t, record.RegularPay.Equal(dec("25.92")))
	assert.True(t, record.TotalFinalCommission.Equal(dec("150")))
}

func TestComputePay_LegacyAddsCommissionAboveFloor(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.LegacyMinimumGuarantee = true
	in.TotalCommissionPool = dec("2500")
	in.EligibleVendorCount = 5 // share 500, commission 292.64

	record := ComputePay(in)

	// Legacy formula pays extended + commission, not the share max.
	assert.True(t, record.TotalFinalCommission.Equal(dec("500")), "final %s", record.TotalFinalCommission)
}

func TestComputePay_NegativeHoursTreatedAsZero(t *testing.T) {
	t.Parallel()

	in := baseInput()
	in.WorkedHours = dec("-3")
	in.DisplayHours = decimal.Zero

	record := ComputePay(in)

	assert.True(t, record.TotalGrossPay.IsZero())
}

func TestRoundMoney_Tiered(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"123.456", "123.46"},
		{"999.99", "999.99"},
		{"999.994", "999.99"},
		{"1000", "1000"},
		{"1049", "1000"},
		{"1050", "1100"},
		{"1249.99", "1200"},
		{"-123.456", "-123.46"},
		{"-1050", "-1100"},
	}

	for _, tc := range cases {
		got := RoundMoney(dec(tc.in))
		assert.True(t, got.Equal(dec(tc.want)), "RoundMoney(%s) = %s, want %s", tc.in, got, tc.want)
	}
}
