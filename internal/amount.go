package internal

import (
	"math"
	"strconv"
	"strings"
)

// MinorUnits converts an amount already expressed in minor currency units
// into the digit string the gateway expects. Halves round away from zero.
func MinorUnits(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount)), 10)
}

// Pad rounds number to the nearest integer and left-pads the result with
// zeros to width characters. A rounded value longer than width is returned
// unchanged, never truncated.
func Pad(number float64, width int) string {
	value := strconv.FormatInt(int64(math.Round(number)), 10)
	if len(value) < width {
		value = strings.Repeat("0", width-len(value)) + value
	}
	return value
}
