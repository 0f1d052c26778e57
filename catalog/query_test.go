package catalog

import (
	"testing"

	"github.com/barinistanbul/storefront/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(t *testing.T, s *Store, f ProductFilter) []string {
	t.Helper()
	out := []string{}
	for _, p := range s.FilterProducts(f) {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	s := New(Options{})
	_, err := s.UpdateProduct("4", dto.UpdateProductDTO{Stock: ptr(0)})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{"everything in stock", ProductFilter{}, []string{"1", "2", "3", "5", "6"}},
		{"all tab", ProductFilter{Category: AllCategories}, []string{"1", "2", "3", "5", "6"}},
		{"category", ProductFilter{Category: "Premium Silk"}, []string{"1", "3"}},
		{"color", ProductFilter{Color: "Cream"}, []string{"1", "6"}},
		{"category and color", ProductFilter{Category: "Premium Silk", Color: "Cream"}, []string{"1"}},
		{"query", ProductFilter{Query: "night"}, []string{"3"}},
		{"out of stock hidden", ProductFilter{Category: "Chiffon"}, []string{}},
		{"out of stock included", ProductFilter{Category: "Chiffon", IncludeOutOfStock: true}, []string{"4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(t, s, tt.filter))
		})
	}
}

func TestRelatedProducts(t *testing.T) {
	s := New(Options{})
	_, err := s.AdjustStock("2", -100)
	require.NoError(t, err)

	related := s.RelatedProducts("1", 4)

	got := []string{}
	for _, p := range related {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"3", "4", "5", "6"}, got)
}

func TestProductColors(t *testing.T) {
	s := New(Options{})
	_, err := s.UpdateProduct("3", dto.UpdateProductDTO{Color: ptr("Cream")})
	require.NoError(t, err)
	_, err = s.AddProduct(newProduct("7", "Premium Silk", "Navy"))
	require.NoError(t, err)

	colors, err := s.ProductColors("1")

	require.NoError(t, err)
	assert.Equal(t, []string{"Cream", "Navy"}, colors)

	_, err = s.ProductColors("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
