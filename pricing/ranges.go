package pricing

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidRange = errors.New("invalid price range")

// Range is a named price bucket in lakh. Membership is half-open:
// Min <= v < Max, or Min <= v when Unbounded.
type Range struct {
	Label     string  `json:"label"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max,omitempty"`
	Unbounded bool    `json:"unbounded"`
}

func (r Range) Contains(v float64) bool {
	if math.IsNaN(v) || v < r.Min {
		return false
	}
	return r.Unbounded || v < r.Max
}

var rangeLabels = []string{
	"₹50L - ₹1Cr",
	"₹1Cr - ₹2Cr",
	"₹2Cr - ₹5Cr",
	"₹5Cr - ₹10Cr",
	"₹10Cr+",
}

var fixedRanges = func() []Range {
	out := make([]Range, 0, len(rangeLabels))
	for _, label := range rangeLabels {
		r, err := ParseRange(label)
		if err != nil {
			panic(err)
		}
		out = append(out, r)
	}
	return out
}()

// Ranges returns the five search buckets, cheapest first.
func Ranges() []Range {
	out := make([]Range, len(fixedRanges))
	copy(out, fixedRanges)
	return out
}

// ParseRange reads labels such as "₹1Cr - ₹2Cr" or "₹10Cr+". The two
// bounds may be separated by " - ", an en dash, or a bare hyphen.
func ParseRange(label string) (Range, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Range{}, fmt.Errorf("%w: empty label", ErrInvalidRange)
	}

	lower, upper, hasUpper := splitBounds(trimmed)

	r := Range{Label: label}

	lo, unbounded, err := parseBound(lower)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, label, err)
	}
	r.Min = lo

	switch {
	case !hasUpper && unbounded:
		r.Unbounded = true
	case !hasUpper:
		return Range{}, fmt.Errorf("%w: %q has no upper bound", ErrInvalidRange, label)
	default:
		if unbounded {
			return Range{}, fmt.Errorf("%w: %q is open-ended below its upper bound", ErrInvalidRange, label)
		}
		hi, open, err := parseBound(upper)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, label, err)
		}
		if open {
			r.Unbounded = true
		} else {
			if hi < lo {
				return Range{}, fmt.Errorf("%w: %q is inverted", ErrInvalidRange, label)
			}
			r.Max = hi
		}
	}

	return r, nil
}

// InRange reports whether a display price falls in the labelled range.
// An unreadable label matches nothing.
func InRange(price, label string) bool {
	r, err := ParseRange(label)
	if err != nil {
		return false
	}
	return r.Contains(Normalize(price))
}

func splitBounds(label string) (string, string, bool) {
	for _, sep := range []string{" - ", " – ", "–", "-"} {
		if lower, upper, ok := strings.Cut(label, sep); ok {
			return strings.TrimSpace(lower), strings.TrimSpace(upper), true
		}
	}
	return label, "", false
}

// boundPattern is the whole of one side of a label: a rupee amount
// followed by its unit, with "Cr+" marking an open bound.
var boundPattern = regexp.MustCompile(`^₹\s*(\d+(?:\.\d+)?)\s*(Cr\+|Cr|L)$`)

// parseBound reads one side of a label. The second result is true for
// an open "Cr+" bound.
func parseBound(s string) (float64, bool, error) {
	m := boundPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false, fmt.Errorf("bound %q is not an amount in Cr or L", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false, fmt.Errorf("bound %q: %v", s, err)
	}

	switch m[2] {
	case croreMarker + "+":
		return value * lakhsPerCrore, true, nil
	case croreMarker:
		return value * lakhsPerCrore, false, nil
	default:
		return value, false, nil
	}
}
