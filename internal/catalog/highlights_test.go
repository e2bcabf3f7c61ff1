package catalog

import (
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestFlashSale(t *testing.T) {
	assert.Equal(t, []int{1, 3, 4}, ids(FlashSale(sampleProducts())))

	many := numberedProducts(10)
	for i := range many {
		many[i].Discount = 10
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(FlashSale(many)))
}

func TestSuggestions(t *testing.T) {
	assert.Nil(t, Suggestions(sampleProducts(), "  "))
	// description matches do not count
	assert.Equal(t, []int{1}, ids(Suggestions(sampleProducts(), "COTTON")))
	assert.Len(t, Suggestions(numberedProducts(12), "p"), SuggestionLimit)
}

func TestCategories(t *testing.T) {
	got := Categories(sampleProducts())
	assert.Equal(t, []models.Category{
		{Name: "Fashion", Slug: "fashion", Count: 1},
		{Name: "electronics", Slug: "electronics", Count: 2},
		{Name: "home", Slug: "home", Count: 1},
		{Name: "stationery", Slug: "stationery", Count: 1},
	}, got)
}
