package shop

import (
	"testing"

	"storefront/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	s := stateWith(t, testProducts())

	assert.False(t, s.AddToCart(404, 1))
	assert.Empty(t, s.Cart)

	require.True(t, s.AddToCart(2, 3))
	require.True(t, s.AddToCart(2, 4))
	require.Len(t, s.Cart, 1)
	assert.Equal(t, models.CartLine{ProductID: 2, Name: "Mug", Price: 40.5, Image: "mug.png", Quantity: 7}, s.Cart[0])

	want := decimal.NewFromFloat(40.5).Mul(decimal.NewFromInt(7))
	assert.True(t, want.Equal(s.CartTotal()), "total %s", s.CartTotal())
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 0)
	s.AddToCart(3, -2)
	assert.Equal(t, 1, s.Cart[0].Quantity)
	assert.Equal(t, 1, s.Cart[1].Quantity)
	assert.Equal(t, 2, s.CartCount())
}

func TestCartLinesAreSnapshots(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 1)

	repriced := testProducts()
	repriced[0].Price = 1
	s.Catalog = testCatalog(t, repriced)
	s.AddToCart(1, 1)

	assert.Equal(t, 100.0, s.Cart[0].Price)
	assert.Equal(t, 2, s.Cart[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 1)
	s.AddToCart(2, 1)
	s.AddToCart(3, 1)

	assert.False(t, s.RemoveFromCart(404))
	assert.True(t, s.RemoveFromCart(2))
	assert.Equal(t, []int{1, 3}, lineIDs(s.Cart))
}

func TestUpdateQuantity(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 1)

	assert.True(t, s.UpdateQuantity(1, 5))
	assert.Equal(t, 5, s.Cart[0].Quantity)

	assert.True(t, s.UpdateQuantity(1, 0))
	assert.Equal(t, 1, s.Cart[0].Quantity)

	assert.False(t, s.UpdateQuantity(2, 9))
	assert.Len(t, s.Cart, 1)
}

func TestCheckout(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 2)
	s.AddToCart(2, 3)
	s.AddToCart(3, 1)
	s.Purchases = []models.PurchaseRecord{{CartLine: models.CartLine{ProductID: 9, Price: 5, Quantity: 1}}}

	before := s.LedgerTotal()
	selected := []int{1, 3}
	expected := decimal.Zero
	for _, l := range s.Cart {
		if l.ProductID == 1 || l.ProductID == 3 {
			expected = expected.Add(l.Amount())
		}
	}

	records := s.Checkout(selected, fixedNow)

	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, fixedNow, r.Date)
	}
	assert.Equal(t, []int{2}, lineIDs(s.Cart))
	assert.Len(t, s.Purchases, 3)
	assert.True(t, s.LedgerTotal().Sub(before).Equal(expected))

	// the ledger holds copies, not the cart's lines
	s.Purchases[1].Quantity = 99
	assert.Equal(t, 3, s.Cart[0].Quantity)
}

func TestCheckoutNoop(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 1)

	assert.Nil(t, s.Checkout(nil, fixedNow))
	assert.Nil(t, s.Checkout([]int{404}, fixedNow))
	assert.Len(t, s.Cart, 1)
	assert.Empty(t, s.Purchases)
}

func TestBuyNow(t *testing.T) {
	s := stateWith(t, testProducts())

	_, err := s.BuyNow(1, 2, fixedNow)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	s.SignIn(testAccount())
	_, err = s.BuyNow(404, 1, fixedNow)
	assert.ErrorIs(t, err, ErrProductNotFound)

	rec, err := s.BuyNow(1, 2, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Quantity)
	assert.Equal(t, fixedNow, rec.Date)
	assert.Len(t, s.Purchases, 1)
	assert.Empty(t, s.Cart)
	assert.True(t, decimal.NewFromInt(200).Equal(s.LedgerTotal()))
}

func TestClearPurchases(t *testing.T) {
	s := stateWith(t, testProducts())
	s.AddToCart(1, 1)
	s.Checkout([]int{1}, fixedNow)
	require.Len(t, s.Purchases, 1)

	s.ClearPurchases()
	assert.Empty(t, s.Purchases)
	assert.True(t, s.LedgerTotal().IsZero())
}

func lineIDs(lines []models.CartLine) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = l.ProductID
	}
	return out
}
