// Package pricing turns the catalogue's display prices into a single
// comparable scale, measured in lakh (1 lakh = 100,000; 1 crore = 100 lakh).
package pricing

import (
	"math"
	"strconv"
	"strings"
)

const (
	currencySymbol = "₹"
	monthlySuffix  = "/mo"
	croreMarker    = "Cr"
	lakhMarker     = "L"

	lakhsPerCrore = 100
	unitsPerLakh  = 100000
	monthsPerYear = 12
)

// Normalize converts a display price into lakh. Crore amounts are scaled
// by 100, lakh amounts pass through, and anything else is read as a
// monthly rent in rupees and annualized. Input with no usable number
// yields NaN, which no Range contains.
func Normalize(price string) float64 {
	clean := strings.Replace(price, currencySymbol, "", 1)
	clean = strings.Replace(clean, monthlySuffix, "", 1)

	value := leadingNumber(clean)

	switch {
	case strings.Contains(clean, croreMarker):
		return value * lakhsPerCrore
	case strings.Contains(clean, lakhMarker):
		return value
	default:
		return value * monthsPerYear / unitsPerLakh
	}
}

// leadingNumber keeps only digits and dots, then parses the longest
// valid decimal prefix of what is left.
func leadingNumber(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if first := strings.IndexByte(digits, '.'); first >= 0 {
		if second := strings.IndexByte(digits[first+1:], '.'); second >= 0 {
			digits = digits[:first+1+second]
		}
	}
	digits = strings.TrimSuffix(digits, ".")

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}
