package handlers

import (
	"storefront/internal/shop"
	"storefront/internal/ws"

	"github.com/gofiber/fiber/v2"
)

type PurchaseHandler struct {
	Storefront *shop.Storefront
}

func NewPurchaseHandler(f *shop.Storefront) *PurchaseHandler {
	return &PurchaseHandler{Storefront: f}
}

// GetPurchases - GET /api/purchases
func (h *PurchaseHandler) GetPurchases(c *fiber.Ctx) error {
	return respond(c, "Purchases", h.Storefront.Ledger(), nil)
}

// ClearPurchases - DELETE /api/purchases
func (h *PurchaseHandler) ClearPurchases(c *fiber.Ctx) error {
	snap, err := h.Storefront.ClearPurchases(c.UserContext())
	return respond(c, "Purchase history cleared", snap, err)
}

// BuyNow - POST /api/purchases/buy-now
func (h *PurchaseHandler) BuyNow(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	snap, err := h.Storefront.BuyNow(c.UserContext(), req.ProductID, min(max(req.Quantity, 1), ws.MaxQuantity))
	if err == nil || shop.IsPersistence(err) {
		c.Status(fiber.StatusCreated)
	}
	return respond(c, "Purchase recorded", snap, err)
}
