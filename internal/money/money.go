// Package money converts between free-form currency text and integer cents.
// All persisted amounts are minor units; floats never touch storage.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const symbol = "NT$"

var hundred = decimal.NewFromInt(100)

// ParseCents converts currency text into cents. Currency markers, thousands
// separators and whitespace are discarded; empty or fully-stripped input is
// zero, never an error. Halves round away from zero. A minus sign is
// stripped with the rest, so negative amounts are not representable.
func ParseCents(text string) (int64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", text)
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatCents renders cents with exactly two fractional digits behind the
// currency marker.
func FormatCents(cents int64) string {
	return symbol + decimal.New(cents, -2).StringFixed(2)
}
