package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount permissively. Empty input is
// zero and valid (an incomplete form, not an error). Non-numeric or
// negative input is zero and invalid; callers degrade to a disabled quote
// rather than failing.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	if d.IsNegative() {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}
