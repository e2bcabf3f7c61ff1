package catalog

import (
	"fmt"

	"storefront/models"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Áo thun cotton", Description: "Basic tee", Price: 120, OriginalPrice: 150, Discount: 20, Rating: 4, Sold: 900, Category: "Fashion", Location: "TP. Hồ Chí Minh"},
		{ID: 2, Name: "Wireless Mouse", Description: "Silent clicks", Price: 250, OriginalPrice: 250, Rating: 5, Sold: 1500, Category: "electronics", Location: "Hà Nội"},
		{ID: 3, Name: "USB-C Cable", Description: "Fast charge cotton braided", Price: 60, OriginalPrice: 90, Discount: 33, Rating: 3, Sold: 4000, Category: "Electronics", Location: "Đà Nẵng"},
		{ID: 4, Name: "Rice cooker", Description: "1.8L", Price: 900, OriginalPrice: 1200, Discount: 25, Rating: 5, Sold: 300, Category: "home", Location: "Hà Nội"},
		{ID: 5, Name: "Notebook", Description: "A5 dotted", Price: 30, OriginalPrice: 30, Rating: 0, Sold: 50, Category: "stationery", Location: ""},
	}
}

func numberedProducts(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		out[i] = models.Product{ID: i + 1, Name: fmt.Sprintf("p%d", i+1), Price: 10, OriginalPrice: 10}
	}
	return out
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
