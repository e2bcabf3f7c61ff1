package shop

import (
	"storefront/internal/catalog"
	"storefront/models"
)

// Snapshot is what a renderer draws from. It shares no memory with State.
// Version grows with every published change; a renderer drops anything older
// than what it already shows.
type Snapshot struct {
	Version       uint64                 `json:"version"`
	CatalogLoaded bool                   `json:"catalogLoaded"`
	Products      []models.Product       `json:"products"`
	Pagination    models.PaginationMeta  `json:"pagination"`
	Criteria      catalog.FilterCriteria `json:"criteria"`
	Sort          catalog.SortKey        `json:"sort"`
	Session       *models.SessionUser    `json:"session"`
	Cart          models.CartSummary     `json:"cart"`
	PurchaseCount int                    `json:"purchaseCount"`
}

// Snapshot builds the renderer view, re-clamping the page cursor on the way.
func (s *State) Snapshot() Snapshot {
	window := s.Window()
	criteria := s.Criteria
	criteria.Locations = append([]string(nil), s.Criteria.Locations...)

	var session *models.SessionUser
	if s.Session != nil {
		cp := *s.Session
		session = &cp
	}

	return Snapshot{
		CatalogLoaded: s.CatalogLoaded,
		Products:      window.Products,
		Pagination:    window.Pagination,
		Criteria:      criteria,
		Sort:          s.Sort,
		Session:       session,
		Cart:          s.CartSummary(),
		PurchaseCount: len(s.Purchases),
	}
}

func (s *State) CartSummary() models.CartSummary {
	lines := make([]models.CartLine, len(s.Cart))
	copy(lines, s.Cart)
	return models.CartSummary{
		Lines: lines,
		Count: s.CartCount(),
		Total: s.CartTotal(),
	}
}

func (s *State) LedgerSummary() models.LedgerSummary {
	records := make([]models.PurchaseRecord, len(s.Purchases))
	copy(records, s.Purchases)
	return models.LedgerSummary{
		Records: records,
		Total:   s.LedgerTotal(),
	}
}
