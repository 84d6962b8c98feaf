/*
Package projection provides the season cash-flow projection engine.

PURPOSE:
  Maps a raw, user-typed season plan (dates, wages, costs, tax settings) to
  a flat record of derived numbers: durations, gross and net income, the tax
  breakdown, and profit at the weekly, monthly, season and post-season
  checkpoints. The engine is pure: no I/O, no shared state, no errors.

KEY CONCEPTS IN THIS FILE (types.go):
  - Input: the raw form snapshot, numeric fields still as text
  - Job: one (wage, hours) pair
  - Result: the derived record, always fully populated

DESIGN PRINCIPLES:
  1. Tolerance: malformed numbers are zero, never an error (see parse.go)
  2. Precision: money math uses decimal.Decimal
  3. Totality: an invalid date range yields IsValid=false and all zeros
  4. Immutability: Compute never mutates its argument

USAGE:
  result := projection.Compute(projection.Input{
      StartDate: "2025-06-17",
      EndDate:   "2025-09-20",
      Job1:      projection.Job{Wage: "15", Hours: "40"},
  })
  if !result.IsValid {
      fmt.Println(result.ToDisplay().Status)
  }

SEE ALSO:
  - engine.go: the computation steps
  - tax.go: federal/state/payroll schedule
  - regions.go: state rate table
  - display.go: locale-style strings for UI layers
*/
package projection

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT - Raw caller snapshot
// =============================================================================

// Job is a single wage/hours pair as typed by the user.
type Job struct {
	Wage  string
	Hours string
}

// Input is a snapshot of the planner form. Numeric fields are raw text and
// are parsed tolerantly by the engine.
type Input struct {
	StartDate string
	EndDate   string

	// One-time, amortized over the season for display only
	UpfrontCost string

	// Recurring weekly
	HousingCost      string
	WeeklyLivingCost string

	// One-time, deducted from the final balance only
	TravelCost   string
	PurchaseCost string

	// Flat percentage, 0-100
	StateTaxRate string

	IsFicaExempt    bool
	IncludeOvertime bool

	Job1 Job
	Job2 Job
}

// =============================================================================
// RESULT - Derived record
// =============================================================================

// Result is the projection for one Input. When IsValid is false every
// numeric field is zero.
type Result struct {
	IsValid bool

	// Duration
	TotalDays  int
	TotalWeeks decimal.Decimal

	// Parsed one-time costs
	UpfrontCost  decimal.Decimal
	TravelCost   decimal.Decimal
	PurchaseCost decimal.Decimal

	// Upfront cost spread over the season. Display only.
	WeeklyProgramCost decimal.Decimal

	// Income
	Job1WeeklyPay     decimal.Decimal
	Job2WeeklyPay     decimal.Decimal
	GrossWeeklyIncome decimal.Decimal
	TotalSeasonGross  decimal.Decimal

	// Tax, computed once on the season gross
	FederalTax     decimal.Decimal
	StateTax       decimal.Decimal
	PayrollTax     decimal.Decimal
	TotalSeasonTax decimal.Decimal
	WeeklyTax      decimal.Decimal

	NetWeeklyIncome decimal.Decimal

	// Housing + living
	WeeklyOperationalExpense decimal.Decimal

	// Profit checkpoints
	WeeklyNetProfit   decimal.Decimal
	MonthlyNetProfit  decimal.Decimal
	TotalSeasonProfit decimal.Decimal
	TotalAfterSplurge decimal.Decimal

	// Season breakdown. TotalOperationalCash - UpfrontCost == TotalSeasonProfit.
	TotalLivingCost      decimal.Decimal
	TotalOperationalCash decimal.Decimal
}

// invalidResult is the all-zero result returned for unusable date ranges.
func invalidResult() Result {
	z := decimal.Zero
	return Result{
		IsValid:                  false,
		TotalWeeks:               z,
		UpfrontCost:              z,
		TravelCost:               z,
		PurchaseCost:             z,
		WeeklyProgramCost:        z,
		Job1WeeklyPay:            z,
		Job2WeeklyPay:            z,
		GrossWeeklyIncome:        z,
		TotalSeasonGross:         z,
		FederalTax:               z,
		StateTax:                 z,
		PayrollTax:               z,
		TotalSeasonTax:           z,
		WeeklyTax:                z,
		NetWeeklyIncome:          z,
		WeeklyOperationalExpense: z,
		WeeklyNetProfit:          z,
		MonthlyNetProfit:         z,
		TotalSeasonProfit:        z,
		TotalAfterSplurge:        z,
		TotalLivingCost:          z,
		TotalOperationalCash:     z,
	}
}
