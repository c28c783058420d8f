package utils

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a loosely-typed JSON value into a decimal amount.
// Sale forms historically submitted monetary fields as either numbers or
// strings, and anything absent or unparseable counts as zero rather than an
// error. That leniency is load-bearing: reservation-only entries leave the
// fee blank and still have to book with utilidad computed from the rest.
func ParseAmount(v any) decimal.Decimal {
	switch t := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(t)
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	}
	return decimal.Zero
}
