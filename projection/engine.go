/*
engine.go - Season projection

PURPOSE:
  Turns one Input snapshot into one Result. Stateless and deterministic:
  the same Input always yields the same Result, and concurrent calls need
  no coordination.

COMPUTATION STEPS:
  1. Validate dates (both present, both parse, end strictly after start)
  2. Duration: ceil(elapsed days), weeks = days / 7 (not rounded)
  3. Recurring costs: weekly program cost (display), operational expense
  4. Gross per job with the 40h overtime rule, summed, times weeks
  5. Tax on the season gross (see tax.go), spread back to weekly
  6. Net weekly income
  7. Profit: weekly, monthly (x4), season
  8. Final balance after travel and purchases

PROFIT POLICY:
  The upfront cost is deducted ONCE from the season aggregate:

    WeeklyNetProfit   = NetWeeklyIncome - WeeklyOperationalExpense
    TotalSeasonProfit = WeeklyNetProfit * TotalWeeks - UpfrontCost

  WeeklyProgramCost shows how the upfront cost "costs" per week but is never
  subtracted from the weekly figure, so weekly profit is cash in pocket.

  Identity kept for audit:
    TotalOperationalCash - UpfrontCost == TotalSeasonProfit

EXAMPLE:
  engine := projection.NewEngine()
  r := engine.Compute(in)
  fmt.Println(r.TotalAfterSplurge.StringFixed(2))

SEE ALSO:
  - types.go: Input and Result
  - parse.go: tolerant numeric parsing
  - season.go: date handling
*/
package projection

import "github.com/shopspring/decimal"

const (
	// StandardWorkWeek is the hours threshold for overtime.
	StandardWorkWeek = 40

	// WeeksPerMonth is the month approximation used for monthly profit.
	WeeksPerMonth = 4
)

var (
	standardHours      = decimal.NewFromInt(StandardWorkWeek)
	overtimeMultiplier = decimal.RequireFromString("1.5")
	weeksPerMonth      = decimal.NewFromInt(WeeksPerMonth)
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes projections against a tax schedule.
type Engine struct {
	Tax TaxSchedule
}

// NewEngine returns an engine using DefaultTaxSchedule.
func NewEngine() *Engine {
	return &Engine{Tax: DefaultTaxSchedule()}
}

var defaultEngine = NewEngine()

// Compute runs the default engine.
func Compute(in Input) Result {
	return defaultEngine.Compute(in)
}

// Compute projects the season described by in. It never fails; an unusable
// date range yields the all-zero invalid result.
func (e *Engine) Compute(in Input) Result {
	// 1. Dates
	season, ok := ParseSeason(in.StartDate, in.EndDate)
	if !ok {
		return invalidResult()
	}

	// 2. Duration
	days := season.Days()
	weeks := season.Weeks()

	// 3. Costs
	upfront := ParseAmount(in.UpfrontCost)
	housing := ParseAmount(in.HousingCost)
	living := ParseAmount(in.WeeklyLivingCost)
	travel := ParseAmount(in.TravelCost)
	purchase := ParseAmount(in.PurchaseCost)

	weeklyProgramCost := perWeek(upfront, weeks)
	weeklyOperational := housing.Add(living)

	// 4. Gross
	pay1 := JobPay(in.Job1, in.IncludeOvertime)
	pay2 := JobPay(in.Job2, in.IncludeOvertime)
	grossWeekly := pay1.Add(pay2)
	seasonGross := grossWeekly.Mul(weeks)

	// 5. Tax
	federal := e.Tax.Federal(seasonGross)
	state := e.Tax.State(ParseAmount(in.StateTaxRate), seasonGross)
	payroll := e.Tax.Payroll(in.IsFicaExempt, seasonGross)
	seasonTax := federal.Add(state).Add(payroll)
	weeklyTax := perWeek(seasonTax, weeks)

	// 6. Net
	netWeekly := grossWeekly.Sub(weeklyTax)

	// 7. Profit
	weeklyProfit := netWeekly.Sub(weeklyOperational)
	seasonProfit := weeklyProfit.Mul(weeks).Sub(upfront)

	// 8. Final balance
	afterSplurge := seasonProfit.Sub(travel).Sub(purchase)

	livingTotal := weeklyOperational.Mul(weeks)

	return Result{
		IsValid:                  true,
		TotalDays:                days,
		TotalWeeks:               weeks,
		UpfrontCost:              upfront,
		TravelCost:               travel,
		PurchaseCost:             purchase,
		WeeklyProgramCost:        weeklyProgramCost,
		Job1WeeklyPay:            pay1,
		Job2WeeklyPay:            pay2,
		GrossWeeklyIncome:        grossWeekly,
		TotalSeasonGross:         seasonGross,
		FederalTax:               federal,
		StateTax:                 state,
		PayrollTax:               payroll,
		TotalSeasonTax:           seasonTax,
		WeeklyTax:                weeklyTax,
		NetWeeklyIncome:          netWeekly,
		WeeklyOperationalExpense: weeklyOperational,
		WeeklyNetProfit:          weeklyProfit,
		MonthlyNetProfit:         weeklyProfit.Mul(weeksPerMonth),
		TotalSeasonProfit:        seasonProfit,
		TotalAfterSplurge:        afterSplurge,
		TotalLivingCost:          livingTotal,
		TotalOperationalCash:     seasonGross.Sub(seasonTax).Sub(livingTotal),
	}
}

// JobPay returns the weekly pay for one job. With overtime enabled, hours
// past StandardWorkWeek earn 1.5x.
func JobPay(j Job, overtime bool) decimal.Decimal {
	wage, hours := ParseJob(j)
	if overtime && hours.GreaterThan(standardHours) {
		regular := standardHours.Mul(wage)
		extra := hours.Sub(standardHours).Mul(wage.Mul(overtimeMultiplier))
		return regular.Add(extra)
	}
	return wage.Mul(hours)
}

// perWeek divides a season amount by weeks, or returns zero when there are
// no weeks.
func perWeek(amount, weeks decimal.Decimal) decimal.Decimal {
	if !weeks.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(weeks)
}
