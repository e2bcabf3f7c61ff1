package catalog

import (
	"strings"

	"storefront/models"
)

const (
	FlashSaleSize   = 6
	SuggestionLimit = 5
)

// FlashSale picks the first discounted products in catalog order.
func FlashSale(products []models.Product) []models.Product {
	out := make([]models.Product, 0, FlashSaleSize)
	for _, p := range products {
		if p.Discount > 0 {
			out = append(out, p)
			if len(out) == FlashSaleSize {
				break
			}
		}
	}
	return out
}

// Suggestions returns up to SuggestionLimit products whose name contains term.
func Suggestions(products []models.Product, term string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
			if len(out) == SuggestionLimit {
				break
			}
		}
	}
	return out
}

// Categories lists distinct categories in first-seen order with product counts.
func Categories(products []models.Product) []models.Category {
	var out []models.Category
	pos := map[string]int{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		slug := strings.ToLower(p.Category)
		if i, ok := pos[slug]; ok {
			out[i].Count++
			continue
		}
		pos[slug] = len(out)
		out = append(out, models.Category{Name: p.Category, Slug: slug, Count: 1})
	}
	return out
}
