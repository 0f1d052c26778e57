package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/go-playground/validator/v10"
)

// AddProduct appends p. A blank id is replaced by a millisecond timestamp id.
func (s *Store) AddProduct(p models.Product) (models.AdminData, error) {
	p = normalizeProduct(p)
	if err := s.validateProduct(p); err != nil {
		return s.Snapshot(), err
	}
	if p.ID == "" {
		p.ID = s.nextID()
	}

	return s.mutate("add product "+p.ID, func(d *models.AdminData) error {
		if indexOfProduct(d.Products, p.ID) >= 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID)
		}
		d.Products = append(slices.Clone(d.Products), p)
		return nil
	})
}

// UpdateProduct merges the set fields of patch into the product with the given id.
func (s *Store) UpdateProduct(id string, patch dto.UpdateProductDTO) (models.AdminData, error) {
	return s.mutate("update product "+id, func(d *models.AdminData) error {
		i := indexOfProduct(d.Products, id)
		if i < 0 {
			return ErrProductNotFound
		}
		updated := normalizeProduct(patch.Apply(d.Products[i]))
		updated.ID = id
		if err := s.validateProduct(updated); err != nil {
			return err
		}
		products := slices.Clone(d.Products)
		products[i] = updated
		d.Products = products
		return nil
	})
}

func (s *Store) DeleteProduct(id string) (models.AdminData, error) {
	return s.mutate("delete product "+id, func(d *models.AdminData) error {
		i := indexOfProduct(d.Products, id)
		if i < 0 {
			return ErrProductNotFound
		}
		d.Products = slices.Delete(slices.Clone(d.Products), i, i+1)
		return nil
	})
}

// AdjustStock adds delta to the product's stock. Stock never drops below zero.
func (s *Store) AdjustStock(id string, delta int) (models.AdminData, error) {
	return s.mutate(fmt.Sprintf("adjust stock %s %+d", id, delta), func(d *models.AdminData) error {
		i := indexOfProduct(d.Products, id)
		if i < 0 {
			return ErrProductNotFound
		}
		products := slices.Clone(d.Products)
		products[i].Stock = max(products[i].Stock+delta, 0)
		d.Products = products
		return nil
	})
}

func (s *Store) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	for indexOfProduct(s.data.Products, strconv.FormatInt(id, 10)) >= 0 {
		id++
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func indexOfProduct(products []models.Product, id string) int {
	return slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
}

func normalizeProduct(p models.Product) models.Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Image = strings.TrimSpace(p.Image)
	p.Category = strings.TrimSpace(p.Category)
	p.Color = strings.TrimSpace(p.Color)
	p.ColorHex = strings.TrimSpace(p.ColorHex)
	return p
}

// productIDReserved holds the characters cart line keys use as separators or that cannot
// travel in a URL path segment.
const productIDReserved = "_/"

func (s *Store) validateProduct(p models.Product) error {
	if err := s.validate.Struct(p); err != nil {
		return validationError(err)
	}
	if strings.ContainsAny(p.ID, productIDReserved) {
		return fmt.Errorf("%w: id must not contain \"_\" or \"/\"", ErrValidation)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "hexcolor":
		return field + " must be a hex color like #1a1a1a"
	}
	return field + " is invalid"
}

func lowerFirst(s string) string {
	switch s {
	case "ID":
		return "id"
	case "ColorHex":
		return "colorHex"
	case "ShippingInfo":
		return "shippingInfo"
	}
	return strings.ToLower(s[:1]) + s[1:]
}
