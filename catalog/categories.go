package catalog

import (
	"slices"
	"strings"

	"github.com/barinistanbul/storefront/models"
)

func (s *Store) AddCategory(name string) (models.AdminData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.Snapshot(), ErrBlankName
	}
	return s.mutate("add category "+name, func(d *models.AdminData) error {
		if slices.Contains(d.Categories, name) {
			return ErrDuplicateCategory
		}
		d.Categories = append(slices.Clone(d.Categories), name)
		return nil
	})
}

// RenameCategory renames the category in place and moves every product filed under it.
func (s *Store) RenameCategory(oldName, newName string) (models.AdminData, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return s.Snapshot(), ErrBlankName
	}
	return s.mutate("rename category "+oldName, func(d *models.AdminData) error {
		i := slices.Index(d.Categories, oldName)
		if i < 0 {
			return ErrCategoryNotFound
		}
		if newName == oldName {
			return nil
		}
		if slices.Contains(d.Categories, newName) {
			return ErrDuplicateCategory
		}

		categories := slices.Clone(d.Categories)
		categories[i] = newName
		products := slices.Clone(d.Products)
		for j := range products {
			if products[j].Category == oldName {
				products[j].Category = newName
			}
		}
		d.Categories = categories
		d.Products = products
		return nil
	})
}

// DeleteCategory removes an unused category. A category still referenced by products is
// kept and a *ReferenceError reports how many.
func (s *Store) DeleteCategory(name string) (models.AdminData, error) {
	return s.mutate("delete category "+name, func(d *models.AdminData) error {
		if !slices.Contains(d.Categories, name) {
			return ErrCategoryNotFound
		}
		if n := countProducts(d.Products, func(p models.Product) bool { return p.Category == name }); n > 0 {
			return &ReferenceError{Kind: "category", Name: name, Count: n}
		}
		d.Categories = removeString(d.Categories, name)
		return nil
	})
}

// ForceDeleteCategory removes the category even when products still use it. Those products
// keep the dangling name.
func (s *Store) ForceDeleteCategory(name string) (models.AdminData, error) {
	return s.mutate("force delete category "+name, func(d *models.AdminData) error {
		if !slices.Contains(d.Categories, name) {
			return ErrCategoryNotFound
		}
		d.Categories = removeString(d.Categories, name)
		return nil
	})
}

func removeString(list []string, v string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func countProducts(products []models.Product, match func(models.Product) bool) int {
	n := 0
	for _, p := range products {
		if match(p) {
			n++
		}
	}
	return n
}
