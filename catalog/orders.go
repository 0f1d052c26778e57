package catalog

import (
	"slices"

	"github.com/barinistanbul/storefront/models"
)

// AddOrder appends an order to the log. Orders are never edited or removed.
func (s *Store) AddOrder(o models.Order) (models.AdminData, error) {
	o.Items = slices.Clone(o.Items)
	return s.mutate("add order "+o.ID, func(d *models.AdminData) error {
		d.Orders = append(slices.Clone(d.Orders), o)
		return nil
	})
}
