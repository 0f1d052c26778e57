package catalog

import (
	"slices"
	"strings"

	"github.com/barinistanbul/storefront/models"
)

// AllCategories is the storefront's "show everything" category tab.
const AllCategories = "Semua"

// ProductFilter selects products for the storefront grid. Empty fields match everything.
type ProductFilter struct {
	Category          string
	Color             string
	Query             string
	IncludeOutOfStock bool
}

func (f ProductFilter) match(p models.Product) bool {
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
		return false
	}
	return f.IncludeOutOfStock || p.Stock > 0
}

func (s *Store) FilterProducts(f ProductFilter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.data.Products))
	for _, p := range s.data.Products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// RelatedProducts returns up to limit other products that are in stock, in catalog order.
func (s *Store) RelatedProducts(id string, limit int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, limit)
	for _, p := range s.data.Products {
		if len(out) >= limit {
			break
		}
		if p.ID != id && p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out
}

// ProductColors lists the colors offered on a product page: the product's own color first,
// then each distinct color of the other products in the same category.
func (s *Store) ProductColors(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOfProduct(s.data.Products, id)
	if i < 0 {
		return nil, ErrProductNotFound
	}
	product := s.data.Products[i]
	colors := []string{product.Color}
	for _, p := range s.data.Products {
		if p.ID == product.ID || p.Category != product.Category {
			continue
		}
		if !slices.Contains(colors, p.Color) {
			colors = append(colors, p.Color)
		}
	}
	return colors, nil
}

// CategoryUsage counts the products filed under name.
func (s *Store) CategoryUsage(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countProducts(s.data.Products, func(p models.Product) bool { return p.Category == name })
}

func (s *Store) ColorUsage(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return countProducts(s.data.Products, func(p models.Product) bool { return p.Color == name })
}

// CategoriesWithUsage lists every category with its product count, in list order.
func (s *Store) CategoriesWithUsage() []models.CategoryUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CategoryUsage, 0, len(s.data.Categories))
	for _, c := range s.data.Categories {
		out = append(out, models.CategoryUsage{
			Name:  c,
			Count: countProducts(s.data.Products, func(p models.Product) bool { return p.Category == c }),
		})
	}
	return out
}

func (s *Store) ColorsWithUsage() []models.ColorUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ColorUsage, 0, len(s.data.Colors))
	for _, c := range s.data.Colors {
		out = append(out, models.ColorUsage{
			ColorOption: c,
			Count:       countProducts(s.data.Products, func(p models.Product) bool { return p.Color == c.Name }),
		})
	}
	return out
}
