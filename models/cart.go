package models

// AvailableSizes are the sizes every product is offered in.
var AvailableSizes = []string{"S", "M", "L", "XL"}

func IsAvailableSize(size string) bool {
	for _, s := range AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}

// CartItem is one cart line. Product is a copy taken when the line was added.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedColor string  `json:"selectedColor"`
	SelectedSize  string  `json:"selectedSize"`
}

// Subtotal is the line price using the snapshotted unit price.
func (i CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
