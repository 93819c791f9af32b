// Package search classifies listings into categories and filters the
// catalogue by category, location and price range.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/pricing"
)

type Category string

const (
	CategoryAll         Category = ""
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
	CategoryLand        Category = "Land"
	CategoryLuxury      Category = "Luxury"
)

var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the four labels in display order.
var Categories = []Category{CategoryResidential, CategoryCommercial, CategoryLand, CategoryLuxury}

var (
	commercialKeywords = []string{"commercial", "office", "shop", "retail", "warehouse"}
	landKeywords       = []string{"land", "plot", "acre", "farm"}
	luxuryKeywords     = []string{"luxury", "premium", "villa", "penthouse"}
)

// luxuryFloor is one crore, in lakh.
const luxuryFloor = 100

// ParseCategory accepts the four labels in any case. Empty input and
// "all" mean no category constraint.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Is reports whether p satisfies the heuristic for c. The heuristics
// overlap, so a listing can be both Commercial and Land.
func Is(p models.Property, c Category) bool {
	title := strings.ToLower(p.Title)

	switch c {
	case CategoryAll:
		return true
	case CategoryResidential:
		return p.Type == models.ListingForSale || p.Type == models.ListingForRent
	case CategoryCommercial:
		return containsAny(title, commercialKeywords) || p.Beds == 0
	case CategoryLand:
		return containsAny(title, landKeywords) || (p.Beds == 0 && p.Baths == 0)
	case CategoryLuxury:
		return strings.Contains(p.Price, "Cr") ||
			containsAny(title, luxuryKeywords) ||
			pricing.Normalize(p.Price) >= luxuryFloor
	default:
		return false
	}
}

// Classify returns every category p belongs to, in display order.
func Classify(p models.Property) []Category {
	var out []Category
	for _, c := range Categories {
		if Is(p, c) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
