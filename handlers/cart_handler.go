package handlers

import (
	"strconv"

	"storefront/internal/shop"
	"storefront/internal/ws"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Storefront *shop.Storefront
}

func NewCartHandler(f *shop.Storefront) *CartHandler {
	return &CartHandler{Storefront: f}
}

// CartItemRequest adds or re-quantifies a line. Quantities above ws.MaxQuantity are capped.
type CartItemRequest struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// CheckoutRequest lists the cart lines to buy.
type CheckoutRequest struct {
	ProductIDs []int `json:"ids"`
}

// GetCart - GET /api/cart
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	return respond(c, "Cart", h.Storefront.Cart(), nil)
}

// AddToCart - POST /api/cart
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	snap, err := h.Storefront.AddToCart(c.UserContext(), req.ProductID, min(req.Quantity, ws.MaxQuantity))
	if err == nil || shop.IsPersistence(err) {
		c.Status(fiber.StatusCreated)
	}
	return respond(c, "Added to cart", snap, err)
}

// UpdateQuantity - PUT /api/cart/:id
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Product id must be a number")
	}
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	snap, err := h.Storefront.UpdateQuantity(c.UserContext(), id, min(req.Quantity, ws.MaxQuantity))
	return respond(c, "Quantity updated", snap, err)
}

// RemoveFromCart - DELETE /api/cart/:id
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Product id must be a number")
	}
	snap, err := h.Storefront.RemoveFromCart(c.UserContext(), id)
	return respond(c, "Removed from cart", snap, err)
}

// Checkout - POST /api/cart/checkout
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if len(req.ProductIDs) == 0 {
		return badRequest(c, "Select at least one item to check out")
	}
	snap, err := h.Storefront.Checkout(c.UserContext(), req.ProductIDs)
	return respond(c, "Checkout complete", snap, err)
}
