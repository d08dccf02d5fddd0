package textmetrics

import (
	"strings"
	"unicode"
)

// NormalizeNumeric strips every non-digit rune, collapsing locale-varying
// price formats ("168.000", "168,000", "168000đ") to one canonical digit
// string. Idempotent.
func NormalizeNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
