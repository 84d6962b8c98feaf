package projection

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on accepted amounts. Anything outside parses as zero.
const (
	maxIntegerDigits  = 30
	maxFractionDigits = 30
)

// ParseAmount parses user-typed numeric text. Empty, unparsable or
// out-of-range input is zero. This is the only place raw numeric text
// enters the engine.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	// Exponent is checked before NumDigits so "1e500000000" is rejected
	// without ever being rescaled.
	exp := int(d.Exponent())
	if exp < -maxFractionDigits || exp > maxIntegerDigits {
		return decimal.Zero
	}
	if d.NumDigits()+exp > maxIntegerDigits {
		return decimal.Zero
	}
	return d
}

// ParseJob parses a wage/hours pair.
func ParseJob(j Job) (wage, hours decimal.Decimal) {
	return ParseAmount(j.Wage), ParseAmount(j.Hours)
}
