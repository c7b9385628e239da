// Package shaper turns tables of text cells into chart series.
package shaper

import (
	"math"
	"regexp"
	"strconv"
)

// numberPattern accepts base-10 integers and decimals with an optional
// leading minus. Exponents, a leading plus and surrounding spaces are
// rejected even though strconv would take some of them.
var numberPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)

// ParseNumber parses s as a plain decimal number.
// The second result is false for empty or non-numeric text.
func ParseNumber(s string) (float64, bool) {
	if !numberPattern.MatchString(s) {
		return math.NaN(), false
	}
	// The pattern only admits syntax ParseFloat accepts; overflow yields ±Inf.
	f, _ := strconv.ParseFloat(s, 64)
	return f, true
}
