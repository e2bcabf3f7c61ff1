package models

// Product is one catalog entry as published in the static data document.
// Products are read-only once the catalog is loaded.
type Product struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Description   string  `json:"description" yaml:"description"`
	Image         string  `json:"image" yaml:"image"`
	Price         float64 `json:"price" yaml:"price"`
	OriginalPrice float64 `json:"originalPrice" yaml:"originalPrice"`
	Discount      int     `json:"discount" yaml:"discount"` // percent
	Rating        int     `json:"rating" yaml:"rating"`     // 0..5
	Sold          int     `json:"sold" yaml:"sold"`
	Category      string  `json:"category" yaml:"category"`
	Location      string  `json:"location" yaml:"location"`
}

// CatalogDocument is the payload served by the catalog source.
type CatalogDocument struct {
	Products []Product `json:"products" yaml:"products"`
}
