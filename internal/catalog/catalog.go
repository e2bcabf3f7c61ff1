// Package catalog holds the immutable product list and the pure functions the
// storefront derives its views from: filtering, sorting, pagination and highlights.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"storefront/models"

	"gopkg.in/yaml.v3"
)

// maxDocumentSize bounds what a catalog source may return.
const maxDocumentSize = 32 << 20

var ErrInvalidProduct = errors.New("catalog: invalid product")

// Catalog is the product list of a session. It is never modified after New.
type Catalog struct {
	products []models.Product
	index    map[int]int
	rejected []error
}

// Empty is the catalog in effect until the first load completes.
func Empty() *Catalog {
	return &Catalog{index: map[int]int{}}
}

// New validates products and builds a catalog. Ids must be unique,
// ratings within 0..5 and price not above the original price.
func New(products []models.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}
	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidProduct, p.ID)
		}
		seen[p.ID] = true
		if err := check(p); err != nil {
			c.rejected = append(c.rejected, err)
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// check reports a product that breaks a field invariant. Such products are
// left out of the catalog instead of failing the whole load.
func check(p models.Product) error {
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: product %d rating %d out of range", ErrInvalidProduct, p.ID, p.Rating)
	}
	if p.Price > p.OriginalPrice {
		return fmt.Errorf("%w: product %d price %.2f above original %.2f", ErrInvalidProduct, p.ID, p.Price, p.OriginalPrice)
	}
	return nil
}

// Rejected lists the products New left out, one error each.
func (c *Catalog) Rejected() []error {
	return append([]error(nil), c.rejected...)
}

// Products returns a copy of the full list in source order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id int) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int { return len(c.products) }

// Load fetches the catalog document once. source is an http(s) URL or a local
// file path; documents are JSON unless the extension or content type says YAML.
func Load(ctx context.Context, source string, client *http.Client) (*Catalog, error) {
	var (
		data   []byte
		format string
		err    error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, format, err = fetch(ctx, source, client)
	} else {
		data, err = os.ReadFile(source)
		format = formatFromExt(source)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog source %s: %w", source, err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog source %s: %w", source, err)
	}
	return New(doc.Products)
}

// Decode parses a catalog document. format is "json" or "yaml".
func Decode(data []byte, format string) (models.CatalogDocument, error) {
	var doc models.CatalogDocument
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return models.CatalogDocument{}, fmt.Errorf("decode %s document: %w", format, err)
	}
	return doc, nil
}

func fetch(ctx context.Context, url string, client *http.Client) ([]byte, string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Accept", "application/json, application/yaml")
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, "", err
	}

	format := formatFromExt(req.URL.Path)
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && strings.Contains(mt, "yaml") {
		format = "yaml"
	}
	return data, format, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
