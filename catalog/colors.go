package catalog

import (
	"slices"
	"strings"

	"github.com/barinistanbul/storefront/models"
)

func (s *Store) AddColor(c models.ColorOption) (models.AdminData, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Hex = strings.TrimSpace(c.Hex)
	if c.Name == "" {
		return s.Snapshot(), ErrBlankName
	}
	if err := s.validateColor(c); err != nil {
		return s.Snapshot(), err
	}
	return s.mutate("add color "+c.Name, func(d *models.AdminData) error {
		if indexOfColor(d.Colors, c.Name) >= 0 {
			return ErrDuplicateColor
		}
		d.Colors = append(slices.Clone(d.Colors), c)
		return nil
	})
}

// UpdateColor replaces the color named oldName and rewrites color and colorHex on every
// product that used it.
func (s *Store) UpdateColor(oldName string, updated models.ColorOption) (models.AdminData, error) {
	updated.Name = strings.TrimSpace(updated.Name)
	updated.Hex = strings.TrimSpace(updated.Hex)
	if updated.Name == "" {
		return s.Snapshot(), ErrBlankName
	}
	if err := s.validateColor(updated); err != nil {
		return s.Snapshot(), err
	}
	return s.mutate("update color "+oldName, func(d *models.AdminData) error {
		i := indexOfColor(d.Colors, oldName)
		if i < 0 {
			return ErrColorNotFound
		}
		if updated.Name != oldName && indexOfColor(d.Colors, updated.Name) >= 0 {
			return ErrDuplicateColor
		}

		colors := slices.Clone(d.Colors)
		colors[i] = updated
		products := slices.Clone(d.Products)
		for j := range products {
			if products[j].Color == oldName {
				products[j].Color = updated.Name
				products[j].ColorHex = updated.Hex
			}
		}
		d.Colors = colors
		d.Products = products
		return nil
	})
}

// DeleteColor removes an unused color. A color still referenced by products is kept and a
// *ReferenceError reports how many.
func (s *Store) DeleteColor(name string) (models.AdminData, error) {
	return s.mutate("delete color "+name, func(d *models.AdminData) error {
		i := indexOfColor(d.Colors, name)
		if i < 0 {
			return ErrColorNotFound
		}
		if n := countProducts(d.Products, func(p models.Product) bool { return p.Color == name }); n > 0 {
			return &ReferenceError{Kind: "color", Name: name, Count: n}
		}
		d.Colors = slices.Delete(slices.Clone(d.Colors), i, i+1)
		return nil
	})
}

// ForceDeleteColor removes the color even when products still use it. Those products keep
// the dangling name and hex.
func (s *Store) ForceDeleteColor(name string) (models.AdminData, error) {
	return s.mutate("force delete color "+name, func(d *models.AdminData) error {
		i := indexOfColor(d.Colors, name)
		if i < 0 {
			return ErrColorNotFound
		}
		d.Colors = slices.Delete(slices.Clone(d.Colors), i, i+1)
		return nil
	})
}

func indexOfColor(colors []models.ColorOption, name string) int {
	return slices.IndexFunc(colors, func(c models.ColorOption) bool { return c.Name == name })
}

func (s *Store) validateColor(c models.ColorOption) error {
	if err := s.validate.Struct(c); err != nil {
		return validationError(err)
	}
	return nil
}
