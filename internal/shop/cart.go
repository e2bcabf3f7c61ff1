package shop

import (
	"time"

	"storefront/models"

	"github.com/shopspring/decimal"
)

func (s *State) cartIndex(productID int) int {
	for i, line := range s.Cart {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddToCart merges quantity into the line for productID, or snapshots the
// catalog entry into a new line. It reports false when the product is unknown.
// Quantities below 1 count as 1.
func (s *State) AddToCart(productID, quantity int) bool {
	product, ok := s.Catalog.Get(productID)
	if !ok {
		return false
	}
	if quantity < 1 {
		quantity = 1
	}
	if i := s.cartIndex(productID); i >= 0 {
		s.Cart[i].Quantity += quantity
		return true
	}
	s.Cart = append(s.Cart, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	})
	return true
}

// RemoveFromCart drops the line for productID and reports whether one existed.
func (s *State) RemoveFromCart(productID int) bool {
	i := s.cartIndex(productID)
	if i < 0 {
		return false
	}
	s.Cart = append(s.Cart[:i:i], s.Cart[i+1:]...)
	return true
}

// UpdateQuantity sets the line quantity to max(1, quantity). Absent lines are ignored.
func (s *State) UpdateQuantity(productID, quantity int) bool {
	i := s.cartIndex(productID)
	if i < 0 {
		return false
	}
	s.Cart[i].Quantity = max(1, quantity)
	return true
}

func (s *State) CartTotal() decimal.Decimal {
	return sumLines(s.Cart)
}

// CartCount is the number of distinct lines, the figure shown on the cart badge.
func (s *State) CartCount() int {
	return len(s.Cart)
}

// Checkout moves the selected lines into the ledger, stamped with at, and
// returns the new records. Lines not selected stay in the cart untouched.
func (s *State) Checkout(productIDs []int, at time.Time) []models.PurchaseRecord {
	if len(productIDs) == 0 {
		return nil
	}
	selected := make(map[int]struct{}, len(productIDs))
	for _, id := range productIDs {
		selected[id] = struct{}{}
	}

	var (
		records []models.PurchaseRecord
		kept    []models.CartLine
	)
	for _, line := range s.Cart {
		if _, ok := selected[line.ProductID]; ok {
			records = append(records, models.PurchaseRecord{CartLine: line, Date: at})
			continue
		}
		kept = append(kept, line)
	}
	if len(records) == 0 {
		return nil
	}
	s.Cart = kept
	s.Purchases = append(s.Purchases, records...)
	return records
}

// BuyNow records a purchase of productID without going through the cart.
// It needs a signed-in session.
func (s *State) BuyNow(productID, quantity int, at time.Time) (models.PurchaseRecord, error) {
	if s.Session == nil {
		return models.PurchaseRecord{}, ErrNotAuthenticated
	}
	product, ok := s.Catalog.Get(productID)
	if !ok {
		return models.PurchaseRecord{}, ErrProductNotFound
	}
	record := models.PurchaseRecord{
		CartLine: models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  max(1, quantity),
		},
		Date: at,
	}
	s.Purchases = append(s.Purchases, record)
	return record, nil
}

// ClearPurchases empties the ledger.
func (s *State) ClearPurchases() {
	s.Purchases = nil
}

func (s *State) LedgerTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.Purchases {
		total = total.Add(r.Amount())
	}
	return total
}

func sumLines(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}
