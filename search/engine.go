package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/dcode-github/nestora/backend/catalogue"
	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/pricing"
)

// Criteria are the three filter dimensions. A zero field places no
// constraint on its dimension.
type Criteria struct {
	Category   Category `json:"type,omitempty"`
	Location   string   `json:"location,omitempty"`
	PriceRange string   `json:"price,omitempty"`
}

func (c Criteria) IsZero() bool {
	return c.Category == CategoryAll && c.Location == "" && c.PriceRange == ""
}

// CriteriaFromQuery reads the type, location and price query parameters.
// Unknown categories and unreadable price labels are rejected.
func CriteriaFromQuery(query url.Values) (Criteria, error) {
	category, err := ParseCategory(query.Get("type"))
	if err != nil {
		return Criteria{}, err
	}

	c := Criteria{
		Category:   category,
		Location:   query.Get("location"),
		PriceRange: strings.TrimSpace(query.Get("price")),
	}

	if c.PriceRange != "" {
		if _, err := pricing.ParseRange(c.PriceRange); err != nil {
			return Criteria{}, err
		}
	}
	return c, nil
}

// Search filters properties in order. It never reorders and returns an
// empty, non-nil slice when nothing matches.
func Search(properties []models.Property, c Criteria) []models.Property {
	var priceRange *pricing.Range
	if c.PriceRange != "" {
		r, err := pricing.ParseRange(c.PriceRange)
		if err != nil {
			return []models.Property{}
		}
		priceRange = &r
	}

	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if !Is(p, c.Category) {
			continue
		}
		if c.Location != "" && !strings.Contains(p.Address, c.Location) {
			continue
		}
		if priceRange != nil && !priceRange.Contains(pricing.Normalize(p.Price)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CacheKey derives a stable cache key from the criteria. Field values
// are query-escaped so no text inside one can pass for another.
func CacheKey(c Criteria) string {
	raw := url.Values{
		"location": {c.Location},
		"price":    {c.PriceRange},
		"type":     {string(c.Category)},
	}.Encode()
	sum := sha256.Sum256([]byte(raw))
	return "search:" + hex.EncodeToString(sum[:])
}

// Engine runs searches over a catalogue, memoizing results in cache
// when one is configured.
type Engine struct {
	catalogue *catalogue.Catalogue
	cache     ResultCache
}

func NewEngine(c *catalogue.Catalogue, cache ResultCache) *Engine {
	return &Engine{catalogue: c, cache: cache}
}

func (e *Engine) Search(ctx context.Context, c Criteria) []models.Property {
	if c.IsZero() {
		return e.catalogue.All()
	}

	if e.cache == nil {
		return Search(e.catalogue.All(), c)
	}

	key := CacheKey(c)
	if cached, ok := e.cache.Get(ctx, key); ok {
		return cached
	}

	results := Search(e.catalogue.All(), c)
	e.cache.Set(ctx, key, results)
	return results
}

func (e *Engine) Catalogue() *catalogue.Catalogue {
	return e.catalogue
}
