package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a numeric string scraped from a product page. The raw
// text may carry comma thousands separators and a trailing currency token,
// e.g. "1,234.56 CZK" parses to 1234.56.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)

	// Cut at the first rune that cannot be part of the number; whatever
	// follows is a currency suffix or other page noise.
	if i := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != ',' && r != '-' && r != '+'
	}); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ",", "")

	if s == "" {
		return decimal.Zero, fmt.Errorf("no numeric value in %q", raw)
	}
	return decimal.NewFromString(s)
}
