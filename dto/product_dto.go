package dto

import "github.com/barinistanbul/storefront/models"

// CreateProductDTO is the admin form payload. ID may be left empty to have one assigned.
type CreateProductDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name" binding:"required"`
	Price        int64  `json:"price" binding:"required,gt=0"`
	Image        string `json:"image" binding:"required"`
	Category     string `json:"category"`
	Color        string `json:"color"`
	ColorHex     string `json:"colorHex" binding:"omitempty,hexcolor"`
	Stock        int    `json:"stock" binding:"gte=0"`
	Description  string `json:"description"`
	Details      string `json:"details"`
	ShippingInfo string `json:"shippingInfo"`
}

func (d CreateProductDTO) ToModel() models.Product {
	return models.Product{
		ID:           d.ID,
		Name:         d.Name,
		Price:        d.Price,
		Image:        d.Image,
		Category:     d.Category,
		Color:        d.Color,
		ColorHex:     d.ColorHex,
		Stock:        d.Stock,
		Description:  d.Description,
		Details:      d.Details,
		ShippingInfo: d.ShippingInfo,
	}
}

// UpdateProductDTO is a partial update. Nil fields are left alone.
type UpdateProductDTO struct {
	Name         *string `json:"name,omitempty"`
	Price        *int64  `json:"price,omitempty"`
	Image        *string `json:"image,omitempty"`
	Category     *string `json:"category,omitempty"`
	Color        *string `json:"color,omitempty"`
	ColorHex     *string `json:"colorHex,omitempty"`
	Stock        *int    `json:"stock,omitempty"`
	Description  *string `json:"description,omitempty"`
	Details      *string `json:"details,omitempty"`
	ShippingInfo *string `json:"shippingInfo,omitempty"`
}

func (d UpdateProductDTO) Empty() bool {
	return d.Name == nil && d.Price == nil && d.Image == nil && d.Category == nil &&
		d.Color == nil && d.ColorHex == nil && d.Stock == nil && d.Description == nil &&
		d.Details == nil && d.ShippingInfo == nil
}

// Apply merges the set fields onto p.
func (d UpdateProductDTO) Apply(p models.Product) models.Product {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Price != nil {
		p.Price = *d.Price
	}
	if d.Image != nil {
		p.Image = *d.Image
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	if d.Color != nil {
		p.Color = *d.Color
	}
	if d.ColorHex != nil {
		p.ColorHex = *d.ColorHex
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if d.Details != nil {
		p.Details = *d.Details
	}
	if d.ShippingInfo != nil {
		p.ShippingInfo = *d.ShippingInfo
	}
	return p
}

// AdjustStockDTO carries the signed change applied by the dashboard's +/- buttons.
type AdjustStockDTO struct {
	Delta int `json:"delta" binding:"required"`
}
