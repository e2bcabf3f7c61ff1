package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a denormalized copy of a product taken when it was added to the cart.
// The json key for the product id stays "id" so persisted carts keep their shape.
type CartLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Amount returns price * quantity.
func (l CartLine) Amount() decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PurchaseRecord is a ledger entry. Records are never edited, only cleared in bulk.
type PurchaseRecord struct {
	CartLine
	Date time.Time `json:"date"`
}

// CartSummary is the renderer view of the cart.
type CartSummary struct {
	Lines []CartLine      `json:"lines"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// LedgerSummary is the renderer view of the purchase history.
type LedgerSummary struct {
	Records []PurchaseRecord `json:"records"`
	Total   decimal.Decimal  `json:"total"`
}
