package projection_test

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/ozkayhan/wat2/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// summerInput is the default J-1 summer plan: 95 days, one 40h job.
func summerInput() projection.Input {
	return projection.Input{
		StartDate:        "2025-06-17",
		EndDate:          "2025-09-20",
		UpfrontCost:      "4000",
		HousingCost:      "100",
		WeeklyLivingCost: "100",
		TravelCost:       "1000",
		PurchaseCost:     "",
		StateTaxRate:     "3.5",
		IsFicaExempt:     true,
		IncludeOvertime:  true,
		Job1:             projection.Job{Wage: "15", Hours: "40"},
	}
}

func f(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertAllZero checks every decimal field of r is zero.
func assertAllZero(t *testing.T, r projection.Result) {
	t.Helper()
	v := reflect.ValueOf(r)
	decType := reflect.TypeOf(decimal.Decimal{})
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		if field.Type != decType {
			continue
		}
		d := v.Field(i).Interface().(decimal.Decimal)
		assert.True(t, d.IsZero(), "%s should be zero, got %s", field.Name, d)
	}
	assert.Zero(t, r.TotalDays)
}

// =============================================================================
// END-TO-END
// =============================================================================

func TestCompute_SummerScenario(t *testing.T) {
	// GIVEN: 95-day season, $15 x 40h, 3.5% state, FICA exempt
	// WHEN: Computing the projection
	// THEN: Every checkpoint follows the season-tax, deduct-upfront-once policy

	r := projection.Compute(summerInput())

	require.True(t, r.IsValid)
	assert.Equal(t, 95, r.TotalDays)
	assert.InDelta(t, 95.0/7, f(r.TotalWeeks), 1e-9)

	assert.True(t, r.GrossWeeklyIncome.Equal(dec("600")))
	assert.True(t, r.Job2WeeklyPay.IsZero())
	assert.InDelta(t, 8142.857142857, f(r.TotalSeasonGross), 1e-6)

	assert.InDelta(t, 814.285714286, f(r.FederalTax), 1e-6)
	assert.InDelta(t, 285.0, f(r.StateTax), 1e-6)
	assert.True(t, r.PayrollTax.IsZero())
	assert.InDelta(t, 1099.285714286, f(r.TotalSeasonTax), 1e-6)
	assert.InDelta(t, 81.0, f(r.WeeklyTax), 1e-6)

	assert.InDelta(t, 519.0, f(r.NetWeeklyIncome), 1e-6)
	assert.True(t, r.WeeklyOperationalExpense.Equal(dec("200")))
	assert.InDelta(t, 294.736842105, f(r.WeeklyProgramCost), 1e-6)

	assert.InDelta(t, 319.0, f(r.WeeklyNetProfit), 1e-6)
	assert.InDelta(t, 1276.0, f(r.MonthlyNetProfit), 1e-6)
	assert.InDelta(t, 329.285714286, f(r.TotalSeasonProfit), 1e-6)
	assert.InDelta(t, -670.714285714, f(r.TotalAfterSplurge), 1e-6)
}

func TestCompute_UpfrontNotInWeeklyProfit(t *testing.T) {
	// GIVEN: Two plans differing only in upfront cost
	// WHEN: Computing both
	// THEN: Weekly profit is equal; the season profit differs by exactly the upfront cost

	cheap := summerInput()
	cheap.UpfrontCost = "1000"
	pricey := summerInput()
	pricey.UpfrontCost = "5000"

	a := projection.Compute(cheap)
	b := projection.Compute(pricey)

	assert.True(t, a.WeeklyNetProfit.Equal(b.WeeklyNetProfit))
	assert.True(t, a.MonthlyNetProfit.Equal(b.MonthlyNetProfit))
	assert.True(t, a.TotalSeasonProfit.Sub(b.TotalSeasonProfit).Equal(dec("4000")))
}

func TestCompute_OneTimeCostsOnlyHitFinalBalance(t *testing.T) {
	in := summerInput()
	in.TravelCost = "0"
	base := projection.Compute(in)

	in.TravelCost = "750"
	in.PurchaseCost = "1200"
	splurge := projection.Compute(in)

	assert.True(t, base.WeeklyNetProfit.Equal(splurge.WeeklyNetProfit))
	assert.True(t, base.TotalSeasonProfit.Equal(splurge.TotalSeasonProfit))
	assert.True(t, base.TotalAfterSplurge.Sub(splurge.TotalAfterSplurge).Equal(dec("1950")))
}

// =============================================================================
// OVERTIME
// =============================================================================

func TestJobPay(t *testing.T) {
	tests := []struct {
		name     string
		job      projection.Job
		overtime bool
		want     string
	}{
		{"overtime past 40h", projection.Job{Wage: "15", Hours: "48"}, true, "780"},
		{"overtime disabled", projection.Job{Wage: "15", Hours: "48"}, false, "720"},
		{"exactly 40h", projection.Job{Wage: "15", Hours: "40"}, true, "600"},
		{"under 40h", projection.Job{Wage: "15", Hours: "30"}, true, "450"},
		{"fractional wage", projection.Job{Wage: "12.50", Hours: "44"}, true, "575"},
		{"blank job", projection.Job{}, true, "0"},
		{"garbage wage", projection.Job{Wage: "abc", Hours: "40"}, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projection.JobPay(tt.job, tt.overtime)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCompute_SumsBothJobs(t *testing.T) {
	in := summerInput()
	in.Job2 = projection.Job{Wage: "12", Hours: "20"}

	r := projection.Compute(in)

	assert.True(t, r.Job1WeeklyPay.Equal(dec("600")))
	assert.True(t, r.Job2WeeklyPay.Equal(dec("240")))
	assert.True(t, r.GrossWeeklyIncome.Equal(dec("840")))
}

// =============================================================================
// TAX
// =============================================================================

func TestFederal_BracketBoundary(t *testing.T) {
	ts := projection.DefaultTaxSchedule()

	tests := []struct {
		gross string
		want  string
	}{
		{"0", "0"},
		{"5000", "500"},
		{"11600", "1160"},
		{"11601", "1160.12"},
		{"20000", "2168"},
	}

	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			got := ts.Federal(dec(tt.gross))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCompute_FICAToggle(t *testing.T) {
	// GIVEN: The same plan with and without the FICA exemption
	// THEN: Exempt payroll is exactly zero; liable payroll is exactly 7.65% of season gross

	in := summerInput()
	in.IsFicaExempt = true
	exempt := projection.Compute(in)

	in.IsFicaExempt = false
	liable := projection.Compute(in)

	assert.True(t, exempt.PayrollTax.IsZero())
	assert.True(t, liable.PayrollTax.Equal(liable.TotalSeasonGross.Mul(dec("0.0765"))))
	assert.True(t, liable.TotalSeasonTax.Sub(exempt.TotalSeasonTax).Equal(liable.PayrollTax))
}

func TestCompute_LinearScaling(t *testing.T) {
	// GIVEN: A 30-day and a 60-day season from the same start, gross below the first bracket cap
	// THEN: Weeks, season gross and season tax all double

	in := summerInput()
	in.StartDate = "2025-06-01"
	in.EndDate = "2025-07-01"
	short := projection.Compute(in)

	in.EndDate = "2025-07-31"
	long := projection.Compute(in)

	require.True(t, long.TotalSeasonGross.LessThan(projection.FederalFirstBracketCap))
	assert.InDelta(t, 2*f(short.TotalWeeks), f(long.TotalWeeks), 1e-9)
	assert.InDelta(t, 2*f(short.TotalSeasonGross), f(long.TotalSeasonGross), 1e-6)
	assert.InDelta(t, 2*f(short.TotalSeasonTax), f(long.TotalSeasonTax), 1e-6)
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestCompute_ReconciliationIdentity(t *testing.T) {
	inputs := map[string]projection.Input{
		"summer": summerInput(),
		"two jobs liable": func() projection.Input {
			in := summerInput()
			in.Job2 = projection.Job{Wage: "18", Hours: "25"}
			in.IsFicaExempt = false
			in.StateTaxRate = "6.4"
			in.PurchaseCost = "900"
			return in
		}(),
		"high earner": func() projection.Input {
			in := summerInput()
			in.Job1 = projection.Job{Wage: "40", Hours: "60"}
			in.EndDate = "2025-12-20"
			return in
		}(),
		"partial day": func() projection.Input {
			in := summerInput()
			in.StartDate = "2025-06-17T08:00"
			in.EndDate = "2025-06-20T09:30"
			return in
		}(),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			r := projection.Compute(in)
			require.True(t, r.IsValid)

			lhs := f(r.TotalOperationalCash.Sub(r.UpfrontCost))
			rhs := f(r.TotalSeasonProfit)
			assert.InEpsilon(t, rhs, lhs, 1e-9)

			assert.True(t, r.TotalSeasonProfit.Sub(r.TravelCost).Sub(r.PurchaseCost).Equal(r.TotalAfterSplurge))
			assert.True(t, r.TotalLivingCost.Equal(r.WeeklyOperationalExpense.Mul(r.TotalWeeks)))
		})
	}
}

func TestCompute_InvalidDates_AllZero(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"empty start", "", "2025-09-20"},
		{"empty end", "2025-06-17", ""},
		{"end before start", "2025-09-20", "2025-06-17"},
		{"same day", "2025-06-17", "2025-06-17"},
		{"impossible date", "2025-02-30", "2025-06-17"},
		{"garbage", "next summer", "2025-09-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := summerInput()
			in.StartDate = tt.start
			in.EndDate = tt.end

			r := projection.Compute(in)

			assert.False(t, r.IsValid)
			assertAllZero(t, r)
		})
	}
}

func TestCompute_MalformedNumbersDegradeToZero(t *testing.T) {
	// GIVEN: Partially typed input
	// THEN: Nothing panics; unparsable fields count as zero

	in := summerInput()
	in.UpfrontCost = "4,000"
	in.HousingCost = "1oo"
	in.StateTaxRate = "3.5%"
	in.Job1 = projection.Job{Wage: "15", Hours: ""}

	r := projection.Compute(in)

	require.True(t, r.IsValid)
	assert.True(t, r.UpfrontCost.IsZero())
	assert.True(t, r.WeeklyOperationalExpense.Equal(dec("100")))
	assert.True(t, r.StateTax.IsZero())
	assert.True(t, r.GrossWeeklyIncome.IsZero())
	assert.True(t, r.TotalSeasonTax.IsZero())
}

func TestCompute_OutOfRangeExponentIsZero(t *testing.T) {
	// GIVEN: Amounts written with enormous exponents
	// WHEN: Computing the projection
	// THEN: It returns promptly and treats them as zero

	in := summerInput()
	in.UpfrontCost = "1e500000000"
	in.HousingCost = "1e-500000000"
	in.Job1 = projection.Job{Wage: "15", Hours: "4e999999999"}

	done := make(chan projection.Result, 1)
	go func() { done <- projection.Compute(in) }()

	select {
	case r := <-done:
		require.True(t, r.IsValid)
		assert.True(t, r.UpfrontCost.IsZero())
		assert.True(t, r.GrossWeeklyIncome.IsZero())
		assert.True(t, r.WeeklyOperationalExpense.Equal(dec("100")))
	case <-time.After(5 * time.Second):
		t.Fatal("Compute did not return")
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	in := summerInput()
	before := in

	_ = projection.Compute(in)

	assert.Equal(t, before, in)
}

func TestCompute_ConcurrentCallsAgree(t *testing.T) {
	in := summerInput()
	want := projection.Compute(in)

	var wg sync.WaitGroup
	results := make([]projection.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = projection.Compute(in)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, want.TotalAfterSplurge.Equal(r.TotalAfterSplurge))
	}
}

func TestEngine_CustomSchedule(t *testing.T) {
	// GIVEN: A flat 20% federal schedule
	flat := projection.TaxSchedule{
		FederalBrackets: []projection.Bracket{{Rate: dec("0.20")}},
		PayrollRate:     projection.PayrollRate,
	}
	engine := &projection.Engine{Tax: flat}

	in := summerInput()
	in.StateTaxRate = "0"

	r := engine.Compute(in)

	assert.True(t, r.FederalTax.Equal(r.TotalSeasonGross.Mul(dec("0.20"))))
}
