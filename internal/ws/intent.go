package ws

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/catalog"
	"storefront/internal/shop"
)

// Intent is a user action sent by a renderer.
type Intent struct {
	Type      string                  `json:"type"`
	Category  string                  `json:"category,omitempty"`
	Sort      string                  `json:"sort,omitempty"`
	Page      int                     `json:"page,omitempty"`
	Query     string                  `json:"q,omitempty"`
	Filters   *catalog.FilterCriteria `json:"filters,omitempty"`
	ProductID int                     `json:"id,omitempty"`
	Quantity  int                     `json:"quantity,omitempty"`
}

var ErrUnknownIntent = errors.New("unknown intent")

// MaxQuantity caps a single cart line update coming from a renderer.
const MaxQuantity = 100

// Dispatch applies in to the storefront. Browsing intents never fail;
// cart intents may return shop errors, including persistence warnings.
func Dispatch(ctx context.Context, f *shop.Storefront, in Intent) (shop.Snapshot, error) {
	switch in.Type {
	case "set_category":
		return f.SetCategory(in.Category), nil
	case "sort":
		key, err := catalog.ParseSortKey(in.Sort)
		if err != nil {
			return f.Snapshot(), err
		}
		return f.SortProducts(key), nil
	case "set_page":
		return f.SetCurrentPage(in.Page), nil
	case "set_filters":
		if in.Filters == nil {
			return f.Snapshot(), fmt.Errorf("set_filters: filters are required")
		}
		return f.SetFilters(*in.Filters), nil
	case "search":
		return f.SetSearchTerm(in.Query), nil
	case "reset_filters":
		return f.ResetFilters(), nil
	case "add_to_cart":
		return f.AddToCart(ctx, in.ProductID, min(in.Quantity, MaxQuantity))
	case "remove_from_cart":
		return f.RemoveFromCart(ctx, in.ProductID)
	case "update_quantity":
		return f.UpdateQuantity(ctx, in.ProductID, min(in.Quantity, MaxQuantity))
	default:
		return f.Snapshot(), fmt.Errorf("%w %q", ErrUnknownIntent, in.Type)
	}
}
