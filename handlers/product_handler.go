package handlers

import (
	"strconv"

	"storefront/internal/shop"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Storefront *shop.Storefront
}

func NewProductHandler(f *shop.Storefront) *ProductHandler {
	return &ProductHandler{Storefront: f}
}

// GetStorefront - GET /api/storefront
func (h *ProductHandler) GetStorefront(c *fiber.Ctx) error {
	return respond(c, "Storefront", h.Storefront.Snapshot(), nil)
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "Product id must be a number")
	}

	product, ok := h.Storefront.Product(id)
	if !ok {
		return respond(c, "", nil, shop.ErrProductNotFound)
	}
	return respond(c, "Product", product, nil)
}

// GetFlashSale - GET /api/flash-sale
func (h *ProductHandler) GetFlashSale(c *fiber.Ctx) error {
	return respond(c, "Flash sale", nonNil(h.Storefront.FlashSale()), nil)
}

// GetSuggestions - GET /api/suggestions?q=
func (h *ProductHandler) GetSuggestions(c *fiber.Ctx) error {
	return respond(c, "Suggestions", nonNil(h.Storefront.Suggestions(c.Query("q"))), nil)
}

// nonNil keeps empty lists as [] on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
