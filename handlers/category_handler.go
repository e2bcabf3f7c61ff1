package handlers

import (
	"storefront/internal/shop"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Storefront *shop.Storefront
}

func NewCategoryHandler(f *shop.Storefront) *CategoryHandler {
	return &CategoryHandler{Storefront: f}
}

// SetCategoryRequest selects a category; an empty name means every category.
type SetCategoryRequest struct {
	Category string `json:"category"`
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	return respond(c, "Categories", nonNil(h.Storefront.Categories()), nil)
}

// SetCategory - PUT /api/category
func (h *CategoryHandler) SetCategory(c *fiber.Ctx) error {
	var req SetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	return respond(c, "Category selected", h.Storefront.SetCategory(req.Category), nil)
}
