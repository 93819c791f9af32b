// Package catalogue holds the fixed, ordered set of listings the search
// and wishlist features read from.
package catalogue

import (
	"errors"
	"fmt"

	"github.com/dcode-github/nestora/backend/models"
)

var ErrDuplicateID = errors.New("duplicate property id")

// Catalogue is read-only once built. Callers always receive copies.
type Catalogue struct {
	properties []models.Property
	index      map[int]int
}

func New(properties []models.Property) (*Catalogue, error) {
	c := &Catalogue{
		properties: make([]models.Property, len(properties)),
		index:      make(map[int]int, len(properties)),
	}
	copy(c.properties, properties)

	for i, p := range c.properties {
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		c.index[p.ID] = i
	}
	return c, nil
}

// All returns every listing in insertion order.
func (c *Catalogue) All() []models.Property {
	out := make([]models.Property, len(c.properties))
	copy(out, c.properties)
	return out
}

func (c *Catalogue) ByID(id int) (models.Property, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Property{}, false
	}
	return c.properties[i], true
}

func (c *Catalogue) Len() int {
	return len(c.properties)
}

// Locations lists the localities offered as location filters.
func (c *Catalogue) Locations() []string {
	out := make([]string, len(locations))
	copy(out, locations)
	return out
}
