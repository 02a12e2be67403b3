package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered amount such as "12,50", "12.50",
// "1 234,50 zł" or "1.234,50". Anything else is ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ToLower(strings.TrimSpace(s))
	clean = strings.TrimSuffix(clean, "zł")
	clean = strings.TrimSuffix(clean, "pln")
	clean = strings.NewReplacer(" ", "", "\u00a0", "").Replace(clean)
	clean = strings.TrimPrefix(clean, "+")

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return d, nil
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
