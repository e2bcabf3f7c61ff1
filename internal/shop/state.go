// Package shop is the storefront core: an explicit State mutated by pure
// operations, and the Storefront service that serializes those operations,
// persists what they touched and publishes snapshots to renderers.
package shop

import (
	"storefront/internal/catalog"
	"storefront/models"
)

// State is everything a storefront session knows. Operations on State never
// perform I/O, so a test can build one by hand and call them directly.
type State struct {
	Catalog       *catalog.Catalog
	CatalogLoaded bool

	Criteria catalog.FilterCriteria
	Sort     catalog.SortKey
	Page     int

	Cart      []models.CartLine
	Purchases []models.PurchaseRecord
	Session   *models.SessionUser
}

func NewState() *State {
	return &State{
		Catalog:  catalog.Empty(),
		Criteria: catalog.DefaultCriteria(),
		Page:     1,
	}
}

// SetCatalog installs a freshly loaded catalog and shows it from page 1.
func (s *State) SetCatalog(c *catalog.Catalog) {
	s.Catalog = c
	s.CatalogLoaded = true
	s.Page = 1
}

// Visible is the filtered and sorted product list.
func (s *State) Visible() []models.Product {
	return catalog.Sort(catalog.Apply(s.Catalog.Products(), s.Criteria), s.Sort)
}

// Window re-clamps the cursor against the current result count and returns that page.
func (s *State) Window() catalog.Window {
	visible := s.Visible()
	s.Page = catalog.ClampPage(s.Page, len(visible))
	return catalog.Paginate(visible, s.Page)
}

// SetCategory selects a category. Picking a category is a hard reset of the
// advanced filters (location, price, rating); the search term is kept.
func (s *State) SetCategory(category string) {
	if category == "" {
		category = catalog.CategoryAll
	}
	s.Criteria.Category = category
	s.ResetAdvancedFilters()
	s.Page = 1
}

func (s *State) ResetAdvancedFilters() {
	s.Criteria.Locations = nil
	s.Criteria.PriceMin = 0
	s.Criteria.PriceMax = 0
	s.Criteria.MinRating = 0
}

// ResetFilters clears every criterion including the search term.
func (s *State) ResetFilters() {
	s.Criteria = catalog.DefaultCriteria()
	s.Page = 1
}

// SetFilters replaces the criteria wholesale.
func (s *State) SetFilters(c catalog.FilterCriteria) {
	if c.Category == "" {
		c.Category = catalog.CategoryAll
	}
	c.Locations = append([]string(nil), c.Locations...)
	s.Criteria = c
	s.Page = 1
}

func (s *State) SetSearchTerm(term string) {
	s.Criteria.SearchTerm = term
	s.Page = 1
}

func (s *State) SetLocations(locations []string) {
	s.Criteria.Locations = append([]string(nil), locations...)
	s.Page = 1
}

// SetPriceRange sets both bounds; a max of 0 means unbounded.
func (s *State) SetPriceRange(lo, hi float64) {
	s.Criteria.PriceMin = lo
	s.Criteria.PriceMax = hi
	s.Page = 1
}

func (s *State) SetMinRating(rating int) {
	s.Criteria.MinRating = rating
	s.Page = 1
}

// SortProducts changes the ordering and returns to the first page.
func (s *State) SortProducts(key catalog.SortKey) {
	s.Sort = key
	s.Page = 1
}

// SetCurrentPage moves the cursor, clamped to the pages that exist.
func (s *State) SetCurrentPage(page int) {
	s.Page = catalog.ClampPage(page, len(s.Visible()))
}
