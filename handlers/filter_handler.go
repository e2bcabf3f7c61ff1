package handlers

import (
	"storefront/internal/catalog"
	"storefront/internal/shop"

	"github.com/gofiber/fiber/v2"
)

// FilterHandler drives the browsing cursor: criteria, ordering and page.
type FilterHandler struct {
	Storefront *shop.Storefront
}

func NewFilterHandler(f *shop.Storefront) *FilterHandler {
	return &FilterHandler{Storefront: f}
}

type SortRequest struct {
	Sort string `json:"sort"`
}

type SearchRequest struct {
	Query string `json:"q"`
}

type PageRequest struct {
	Page int `json:"page"`
}

// SetFilters - PUT /api/filters
func (h *FilterHandler) SetFilters(c *fiber.Ctx) error {
	criteria := catalog.DefaultCriteria()
	if err := c.BodyParser(&criteria); err != nil {
		return badRequest(c, "Invalid input")
	}
	return respond(c, "Filters applied", h.Storefront.SetFilters(criteria), nil)
}

// SetSearch - PUT /api/search
func (h *FilterHandler) SetSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	return respond(c, "Search applied", h.Storefront.SetSearchTerm(req.Query), nil)
}

// ResetFilters - POST /api/filters/reset
func (h *FilterHandler) ResetFilters(c *fiber.Ctx) error {
	return respond(c, "Filters reset", h.Storefront.ResetFilters(), nil)
}

// SetSort - PUT /api/sort
func (h *FilterHandler) SetSort(c *fiber.Ctx) error {
	var req SortRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	key, err := catalog.ParseSortKey(req.Sort)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return respond(c, "Sort applied", h.Storefront.SortProducts(key), nil)
}

// SetPage - PUT /api/page
func (h *FilterHandler) SetPage(c *fiber.Ctx) error {
	var req PageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	return respond(c, "Page selected", h.Storefront.SetCurrentPage(req.Page), nil)
}
