package dataset

import "strings"

// StandardizeCNPJ strips formatting from a CNPJ and left-pads with zeros to
// the canonical 14 digits. Empty input stays empty.
func StandardizeCNPJ(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if len(digits) < 14 {
		digits = strings.Repeat("0", 14-len(digits)) + digits
	}
	return digits
}
