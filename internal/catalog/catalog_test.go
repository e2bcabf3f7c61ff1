package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDocument = `{"products":[
  {"id":1,"name":"Tee","description":"cotton","image":"https://img/1.png","price":100,"originalPrice":150,"discount":33,"rating":4,"sold":12,"category":"fashion","location":"Hà Nội"},
  {"id":2,"name":"Mug","description":"ceramic","image":"https://img/2.png","price":40,"originalPrice":40,"discount":0,"rating":5,"sold":7,"category":"home","location":"Đà Nẵng"}
]}`

const yamlDocument = `products:
  - id: 1
    name: Tee
    price: 100
    originalPrice: 150
    rating: 4
    category: fashion
  - id: 2
    name: Mug
    price: 40
    originalPrice: 40
    rating: 5
    category: home
`

func TestNewValidates(t *testing.T) {
	_, err := New([]models.Product{{ID: 1}, {ID: 1}})
	assert.True(t, errors.Is(err, ErrInvalidProduct))

	c, err := New(sampleProducts())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	p, ok := c.Get(4)
	require.True(t, ok)
	assert.Equal(t, "Rice cooker", p.Name)

	_, ok = c.Get(404)
	assert.False(t, ok)
}

func TestNewSkipsInvalidProducts(t *testing.T) {
	c, err := New([]models.Product{
		{ID: 1, Name: "ok", Price: 10, OriginalPrice: 10, Rating: 4},
		{ID: 2, Name: "too good", Price: 10, OriginalPrice: 10, Rating: 6},
		{ID: 3, Name: "marked up", Price: 20, OriginalPrice: 10, Rating: 3},
		{ID: 4, Name: "also ok", Price: 5, OriginalPrice: 8, Rating: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, ids(c.Products()))

	rejected := c.Rejected()
	require.Len(t, rejected, 2)
	for _, r := range rejected {
		assert.ErrorIs(t, r, ErrInvalidProduct)
	}
	assert.Contains(t, rejected[0].Error(), "product 2")
	assert.Contains(t, rejected[1].Error(), "product 3")

	p, ok := c.Get(4)
	require.True(t, ok)
	assert.Equal(t, "also ok", p.Name)
	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	src := sampleProducts()
	c, err := New(src)
	require.NoError(t, err)

	src[0].Name = "changed"
	got := c.Products()
	got[1].Name = "changed too"

	p, _ := c.Get(1)
	assert.Equal(t, "Áo thun cotton", p.Name)
	p, _ = c.Get(2)
	assert.Equal(t, "Wireless Mouse", p.Name)
}

func TestEmpty(t *testing.T) {
	c := Empty()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Products())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "data.json")
	yamlPath := filepath.Join(dir, "data.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDocument), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDocument), 0o644))

	for _, path := range []string{jsonPath, yamlPath} {
		c, err := Load(context.Background(), path, nil)
		require.NoError(t, err, path)
		assert.Equal(t, 2, c.Len())
		p, ok := c.Get(1)
		require.True(t, ok)
		assert.Equal(t, 150.0, p.OriginalPrice)
	}

	_, err := Load(context.Background(), filepath.Join(dir, "missing.json"), nil)
	assert.Error(t, err)
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(jsonDocument))
		case "/catalog":
			w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
			w.Write([]byte(yamlDocument))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c, err := Load(context.Background(), srv.URL+"/data.json", srv.Client())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	c, err = Load(context.Background(), srv.URL+"/catalog", srv.Client())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = Load(context.Background(), srv.URL+"/gone.json", srv.Client())
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("{"), "json")
	assert.Error(t, err)
}
