package catalog

import (
	"strings"

	"storefront/models"
)

// CategoryAll disables the category predicate.
const CategoryAll = "all"

// FilterCriteria is the set of active predicates. Zero values disable a predicate;
// PriceMax <= 0 means no upper bound.
type FilterCriteria struct {
	Category   string   `json:"category"`
	SearchTerm string   `json:"searchTerm"`
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
	MinRating  int      `json:"minRating"`
	Locations  []string `json:"locations"`
}

// DefaultCriteria shows the whole catalog.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Category: CategoryAll}
}

// Predicate reports whether a product passes one criterion.
type Predicate func(models.Product) bool

// Predicates returns the enabled predicates in evaluation order:
// category, search, location, price, rating.
func (c FilterCriteria) Predicates() []Predicate {
	var preds []Predicate

	if cat := strings.TrimSpace(c.Category); cat != "" && !strings.EqualFold(cat, CategoryAll) {
		preds = append(preds, func(p models.Product) bool {
			return p.Category != "" && strings.EqualFold(p.Category, cat)
		})
	}

	if term := strings.ToLower(strings.TrimSpace(c.SearchTerm)); term != "" {
		preds = append(preds, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	}

	if locs := c.activeLocations(); len(locs) > 0 {
		preds = append(preds, func(p models.Product) bool {
			if p.Location == "" {
				return false
			}
			for _, loc := range locs {
				if strings.Contains(p.Location, loc) {
					return true
				}
			}
			return false
		})
	}

	if c.PriceMin > 0 || c.PriceMax > 0 {
		lo, hi := c.PriceMin, c.PriceMax
		preds = append(preds, func(p models.Product) bool {
			if p.Price < lo {
				return false
			}
			return hi <= 0 || p.Price <= hi
		})
	}

	if c.MinRating > 0 {
		minRating := c.MinRating
		preds = append(preds, func(p models.Product) bool {
			return p.Rating >= minRating
		})
	}

	return preds
}

func (c FilterCriteria) activeLocations() []string {
	var out []string
	for _, loc := range c.Locations {
		// collapse inner whitespace the way checkbox labels are normalized
		if loc = strings.Join(strings.Fields(loc), " "); loc != "" {
			out = append(out, loc)
		}
	}
	return out
}

// Apply returns the products passing every enabled predicate, in input order.
// The input slice is not modified.
func Apply(products []models.Product, criteria FilterCriteria) []models.Product {
	preds := criteria.Predicates()
	out := make([]models.Product, 0, len(products))
next:
	for _, p := range products {
		for _, pred := range preds {
			if !pred(p) {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}
