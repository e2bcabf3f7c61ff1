package catalog

import (
	"storefront/models"
)

// ItemsPerPage is fixed for the storefront grid.
const ItemsPerPage = 15

// TotalPages is never below 1, even for an empty list.
func TotalPages(total int) int {
	pages := (total + ItemsPerPage - 1) / ItemsPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage moves page into [1, TotalPages(total)].
func ClampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total); page > last {
		return last
	}
	return page
}

// Window is one page of products plus its cursor.
type Window struct {
	Products   []models.Product      `json:"products"`
	Pagination models.PaginationMeta `json:"pagination"`
}

// Paginate slices the page-th window out of items, clamping page first.
func Paginate(items []models.Product, page int) Window {
	page = ClampPage(page, len(items))
	start := (page - 1) * ItemsPerPage
	end := start + ItemsPerPage
	if end > len(items) {
		end = len(items)
	}
	window := make([]models.Product, end-start)
	copy(window, items[start:end])
	return Window{
		Products:   window,
		Pagination: models.NewPaginationMeta(page, ItemsPerPage, len(items)),
	}
}
