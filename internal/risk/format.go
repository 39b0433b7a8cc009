package risk

import (
	"fmt"
	"math"
	"strings"
)

// Formatting helpers shared by the table and chart presentation layer.
// All of them render missing values as a dash instead of erroring.

const missingPlaceholder = "-"

// FormatPercent renders a fractional return as a percentage string,
// e.g. 0.0123 -> "1.23%".
func FormatPercent(v *float64, decimals int) string {
	if missing(v) {
		return missingPlaceholder
	}
	return fmt.Sprintf("%.*f%%", decimals, *v*100)
}

// FormatPercentPoints renders a value already expressed in percentage
// points, e.g. 2.5 -> "2.50%".
func FormatPercentPoints(v *float64, decimals int) string {
	if missing(v) {
		return missingPlaceholder
	}
	return fmt.Sprintf("%.*f%%", decimals, *v)
}

// FormatCurrency renders a BRL amount with thousand grouping,
// e.g. 1234567.89 -> "R$ 1.234.567,89".
func FormatCurrency(v *float64) string {
	if missing(v) {
		return missingPlaceholder
	}
	neg := *v < 0
	abs := math.Abs(*v)
	whole := int64(abs)
	cents := int64(math.Round((abs - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}
	out := fmt.Sprintf("R$ %s,%02d", groupThousands(whole), cents)
	if neg {
		out = "-" + out
	}
	return out
}

// AbbreviateNumber renders a large count with a K/M/B suffix,
// e.g. 1234567 -> "1.2M".
func AbbreviateNumber(v *float64) string {
	if missing(v) {
		return missingPlaceholder
	}
	abs := math.Abs(*v)
	sign := ""
	if *v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%s%.1fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.1fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.1fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, abs)
	}
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
