package shop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/store"
	"storefront/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Tee", Description: "cotton tee", Image: "tee.png", Price: 100, OriginalPrice: 150, Discount: 33, Rating: 4, Sold: 120, Category: "fashion", Location: "Hà Nội"},
		{ID: 2, Name: "Mug", Description: "ceramic", Image: "mug.png", Price: 40.5, OriginalPrice: 50, Discount: 19, Rating: 5, Sold: 80, Category: "home", Location: "Đà Nẵng"},
		{ID: 3, Name: "Lamp", Description: "desk lamp", Image: "lamp.png", Price: 300, OriginalPrice: 300, Rating: 3, Sold: 10, Category: "home", Location: "TP. Hồ Chí Minh"},
	}
}

func testCatalog(t *testing.T, products []models.Product) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(products)
	require.NoError(t, err)
	return c
}

// stateWith builds a State around a fixed catalog, the way operations see it at runtime.
func stateWith(t *testing.T, products []models.Product) *State {
	t.Helper()
	s := NewState()
	s.SetCatalog(testCatalog(t, products))
	return s
}

func manyProducts(n int) []models.Product {
	out := make([]models.Product, n)
	for i := range out {
		cat := "even"
		if (i+1)%2 == 1 {
			cat = "odd"
		}
		out[i] = models.Product{ID: i + 1, Name: fmt.Sprintf("item %d", i+1), Price: float64(i + 1), OriginalPrice: float64(i + 1), Category: cat}
	}
	return out
}

// recorder collects published snapshots.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) Publish(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

// flakyStore fails writes for the keys in failing and reads for the keys in unreadable.
type flakyStore struct {
	*store.MemoryStore
	failing    map[string]bool
	unreadable map[string]bool
}

var errIO = errors.New("io error")

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.unreadable[key] {
		return nil, errIO
	}
	return f.MemoryStore.Get(ctx, key)
}

var errDiskFull = errors.New("disk full")

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failing[key] {
		return errDiskFull
	}
	return f.MemoryStore.Set(ctx, key, value)
}

func newTestStorefront(t *testing.T, st store.Store) (*Storefront, *recorder) {
	t.Helper()
	rec := &recorder{}
	n := 0
	f := NewStorefront(st, Options{
		Logger:    zerolog.Nop(),
		Now:       func() time.Time { return fixedNow },
		NewID:     func() string { n++; return fmt.Sprintf("user-%d", n) },
		Publisher: rec,
	})
	f.SetCatalog(testCatalog(t, testProducts()))
	return f, rec
}
