package projection

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// USER-FACING DISPLAY
// =============================================================================

// StatusNeedDates is shown in place of figures when the season is invalid.
const StatusNeedDates = "Enter dates to see projection"

// Display is what a UI shows for a Result: whole-dollar en-US strings plus
// the flags used to color profit and loss.
type Display struct {
	IsValid bool   `json:"is_valid"`
	Status  string `json:"status,omitempty"`

	Duration     string `json:"duration"`     // "13.6 weeks"
	Depreciation string `json:"depreciation"` // "-$295/wk"

	WeeklyGross      string `json:"weekly_gross"`
	TotalSeasonTax   string `json:"total_season_tax"` // shown as a deduction: "-$1,099"
	FederalTax       string `json:"federal_tax"`
	StateTax         string `json:"state_tax"`
	PayrollTax       string `json:"payroll_tax"`
	WeeklyNetProfit  string `json:"weekly_net_profit"`
	MonthlyNetProfit string `json:"monthly_net_profit"`
	SeasonProfit     string `json:"season_profit"`
	AfterSplurge     string `json:"after_splurge"`

	SeasonInProfit bool `json:"season_in_profit"`
	FinalInProfit  bool `json:"final_in_profit"`
}

func newPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// FormatCurrency renders whole dollars with grouping, e.g. "-$1,234".
func FormatCurrency(d decimal.Decimal) string {
	return formatCurrency(newPrinter(), d)
}

func formatCurrency(p *message.Printer, d decimal.Decimal) string {
	rounded := d.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs := rounded.Abs()
	if abs.GreaterThan(maxInt64) {
		return sign + "$" + groupThousands(abs.String())
	}
	return sign + "$" + p.Sprintf("%d", abs.IntPart())
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// groupThousands inserts commas into a string of decimal digits.
func groupThousands(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ToDisplay converts a Result to display strings.
func (r Result) ToDisplay() Display {
	if !r.IsValid {
		return Display{Status: StatusNeedDates}
	}

	p := newPrinter()
	money := func(d decimal.Decimal) string { return formatCurrency(p, d) }
	weeks, _ := r.TotalWeeks.Float64()

	return Display{
		IsValid:          true,
		Duration:         p.Sprintf("%.1f weeks", weeks),
		Depreciation:     money(r.WeeklyProgramCost.Neg()) + "/wk",
		WeeklyGross:      money(r.GrossWeeklyIncome),
		TotalSeasonTax:   money(r.TotalSeasonTax.Neg()),
		FederalTax:       money(r.FederalTax),
		StateTax:         money(r.StateTax),
		PayrollTax:       money(r.PayrollTax),
		WeeklyNetProfit:  money(r.WeeklyNetProfit),
		MonthlyNetProfit: money(r.MonthlyNetProfit),
		SeasonProfit:     money(r.TotalSeasonProfit),
		AfterSplurge:     money(r.TotalAfterSplurge),
		SeasonInProfit:   !r.TotalSeasonProfit.IsNegative(),
		FinalInProfit:    !r.TotalAfterSplurge.IsNegative(),
	}
}
