// Package decimal wraps shopspring/decimal with the amount semantics
// used for invoice currency fields: exact fixed-point values, never
// binary floating point.
package decimal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses a decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseAmount parses a currency amount as an exact, non-negative
// decimal. Rejects anything the strict decimal grammar does not
// accept (no exponents, signs, or surrounding whitespace) so that
// attacker-supplied bytes cannot smuggle a malformed amount through.
func ParseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return Zero, fmt.Errorf("empty amount")
	}
	if strings.ContainsAny(s, "+-eE ") {
		return Zero, fmt.Errorf("amount %q contains sign or exponent", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	if d.IsNegative() {
		return Zero, fmt.Errorf("amount %q is negative", s)
	}
	return d, nil
}

// FormatAmount renders an amount as exact decimal text with two
// fractional digits, for persistence and export
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// IsNonNegative returns true if the decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}
