package internal

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Character classes the gateway declares for its text fields.
const (
	ClassAN  = "AN"  // alphanumeric, accents stripped
	ClassANP = "ANP" // alphanumeric plus "-", "." and space
	ClassANS = "ANS" // alphanumeric with special characters, sent as-is
	ClassN   = "N"   // numeric
	ClassA   = "A"   // alphabetic
)

// accentStripper decomposes characters and drops the combining marks, so
// "é" becomes "e" instead of being removed.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(value string) string {
	stripped, _, err := transform.String(accentStripper, value)
	if err != nil {
		return value
	}
	return stripped
}

func keepRunes(value string, keep func(rune) bool) string {
	var builder strings.Builder
	builder.Grow(len(value))
	for _, r := range value {
		if keep(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// FormatText applies the gateway character-class rules to value: class
// filtering first, then carriage-return/line-feed removal, whitespace trim
// and rune-aware truncation to maxLength when it is positive. Unknown
// classes fall back to the AN rule. The function is total: any input
// yields a formatted string.
func FormatText(value, class string, maxLength int) string {
	switch class {
	case ClassANS:
	case ClassN:
		value = keepRunes(value, func(r rune) bool { return isDigit(r) || r == '.' })
	case ClassANP:
		value = stripAccents(value)
		value = keepRunes(value, func(r rune) bool {
			return isDigit(r) || isAlpha(r) || r == '-' || r == '.' || r == ' '
		})
	case ClassA:
		value = stripAccents(value)
		value = keepRunes(value, isAlpha)
	default:
		value = stripAccents(value)
	}

	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")
	value = strings.TrimSpace(value)

	if maxLength > 0 {
		if r := []rune(value); len(r) > maxLength {
			value = string(r[:maxLength])
		}
	}
	return value
}
