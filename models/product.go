package models

import "strings"

// Product is a catalog entry. Category and Color name entries of the category and color lists,
// but nothing below the catalog store enforces that.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Price        int64  `json:"price" validate:"gt=0"`
	Image        string `json:"image" validate:"required"`
	Category     string `json:"category"`
	Color        string `json:"color"`
	ColorHex     string `json:"colorHex" validate:"omitempty,hexcolor"`
	Stock        int    `json:"stock" validate:"gte=0"`
	Description  string `json:"description"`
	Details      string `json:"details"`
	ShippingInfo string `json:"shippingInfo"`
}

// DetailLines splits the details text into its non-blank lines.
func (p Product) DetailLines() []string {
	return splitLines(p.Details)
}

// ShippingLines splits the shipping text into its non-blank lines.
func (p Product) ShippingLines() []string {
	return splitLines(p.ShippingInfo)
}

func splitLines(s string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
