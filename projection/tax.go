/*
tax.go - Season tax schedule

PURPOSE:
  Computes the three tax components on the SEASON gross, not week by week.
  The weekly tax figure is the season total spread evenly over the weeks.

COMPONENTS:
  Federal:  progressive brackets (2024 single filer estimate)
              10% up to 11,600
              12% above
  State:    flat percentage of season gross
  Payroll:  7.65% (Social Security + Medicare), zero when exempt

NOTE:
  These are single-year estimates, not a compliance engine. Brackets are
  data on TaxSchedule so a different year can be swapped in without touching
  the engine.

SEE ALSO:
  - engine.go: uses TaxSchedule in Step 5
  - regions.go: source of flat state percentages
*/
package projection

import "github.com/shopspring/decimal"

var (
	decimalHundred = decimal.NewFromInt(100)

	// FederalFirstBracketCap is the top of the 10% bracket.
	FederalFirstBracketCap = decimal.NewFromInt(11600)

	// PayrollRate is the combined FICA rate.
	PayrollRate = decimal.RequireFromString("0.0765")
)

// Bracket is one slice of a progressive schedule. A nil UpTo means the
// bracket is open-ended.
type Bracket struct {
	UpTo *decimal.Decimal
	Rate decimal.Decimal
}

// TaxSchedule holds the federal brackets and the payroll rate.
type TaxSchedule struct {
	FederalBrackets []Bracket
	PayrollRate     decimal.Decimal
}

// DefaultTaxSchedule returns the 2024 single-filer estimate.
func DefaultTaxSchedule() TaxSchedule {
	firstCap := FederalFirstBracketCap
	return TaxSchedule{
		FederalBrackets: []Bracket{
			{UpTo: &firstCap, Rate: decimal.RequireFromString("0.10")},
			{UpTo: nil, Rate: decimal.RequireFromString("0.12")},
		},
		PayrollRate: PayrollRate,
	}
}

// Federal returns the progressive federal tax on gross.
//
// The first bracket is not clamped below, so the result equals
// min(gross, cap1)*r1 + max(0, gross-cap1)*r2 + ... for any gross.
func (ts TaxSchedule) Federal(gross decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for i, b := range ts.FederalBrackets {
		span := gross.Sub(lower)
		if b.UpTo != nil {
			span = decimal.Min(span, b.UpTo.Sub(lower))
		}
		if i > 0 && !span.IsPositive() {
			break
		}
		tax = tax.Add(span.Mul(b.Rate))
		if b.UpTo == nil || gross.LessThanOrEqual(*b.UpTo) {
			break
		}
		lower = *b.UpTo
	}
	return tax
}

// State returns ratePct percent of gross.
func (ts TaxSchedule) State(ratePct, gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(ratePct.Div(decimalHundred))
}

// Payroll returns the payroll tax, or zero when exempt.
func (ts TaxSchedule) Payroll(exempt bool, gross decimal.Decimal) decimal.Decimal {
	if exempt {
		return decimal.Zero
	}
	return gross.Mul(ts.PayrollRate)
}
