package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"storefront/models"
)

// SortKey selects the ordering of the filtered list.
type SortKey int

const (
	SortNone SortKey = iota
	SortNewest
	SortPopular
	SortBestSellers
	SortPriceLow
	SortPriceHigh
)

var sortKeyNames = map[SortKey]string{
	SortNone:        "none",
	SortNewest:      "newest",
	SortPopular:     "popular",
	SortBestSellers: "best-sellers",
	SortPriceLow:    "price-low",
	SortPriceHigh:   "price-high",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey maps a wire name to its key. It is meant for transport
// boundaries only; the core takes SortKey values.
func ParseSortKey(name string) (SortKey, error) {
	if name == "" {
		return SortNone, nil
	}
	for k, n := range sortKeyNames {
		if n == name {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort key %q", name)
}

func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SortKey) UnmarshalText(text []byte) error {
	parsed, err := ParseSortKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Sort returns a stably ordered copy. Popular and best-sellers are the same ordering.
func Sort(products []models.Product, key SortKey) []models.Product {
	out := slices.Clone(products)
	var order func(a, b models.Product) int
	switch key {
	case SortNewest:
		order = func(a, b models.Product) int { return cmp.Compare(b.ID, a.ID) }
	case SortPopular, SortBestSellers:
		order = func(a, b models.Product) int { return cmp.Compare(b.Sold, a.Sold) }
	case SortPriceLow:
		order = func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		order = func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	default:
		return out
	}
	slices.SortStableFunc(out, order)
	return out
}
