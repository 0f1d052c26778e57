// Package cart aggregates a visitor's selections into cart lines and turns them into orders.
package cart

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/barinistanbul/storefront/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrVariantRequired = errors.New("pick a color and a size")
	ErrInvalidKey      = errors.New("invalid cart item key")
	ErrItemNotFound    = errors.New("cart item not found")
)

// Key identifies a cart line. The same product in another color or size is another line.
type Key struct {
	ProductID string
	Color     string
	Size      string
}

func (k Key) String() string {
	return k.ProductID + "_" + k.Color + "_" + k.Size
}

// ParseKey reverses Key.String. The product id ends at the first underscore and the size
// starts after the last one, so only the color may contain underscores. Product ids with an
// underscore never reach a cart, see AddItem.
func ParseKey(s string) (Key, error) {
	first := strings.Index(s, "_")
	last := strings.LastIndex(s, "_")
	if first <= 0 || first == last || last == len(s)-1 {
		return Key{}, ErrInvalidKey
	}
	return Key{ProductID: s[:first], Color: s[first+1 : last], Size: s[last+1:]}, nil
}

func keyOf(item models.CartItem) Key {
	return Key{ProductID: item.Product.ID, Color: item.SelectedColor, Size: item.SelectedSize}
}

// Cart is one visitor's cart and drawer state. It is safe for concurrent use.
type Cart struct {
	mu        sync.Mutex
	id        string
	items     []models.CartItem
	open      bool
	updatedAt time.Time
	now       func() time.Time
}

func newCart(id string, now func() time.Time) *Cart {
	return &Cart{id: id, items: []models.CartItem{}, now: now, updatedAt: now()}
}

func (c *Cart) ID() string { return c.id }

func (c *Cart) touch() { c.updatedAt = c.now() }

// AddItem merges quantity into the line for (product, color, size) or starts a new line with
// a copy of product. Adding opens the drawer. Products whose id would not survive ParseKey are
// refused with ErrInvalidKey.
func (c *Cart) AddItem(product models.Product, quantity int, color, size string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if product.ID == "" || strings.ContainsAny(product.ID, "_/") {
		return ErrInvalidKey
	}
	color, size = strings.TrimSpace(color), strings.TrimSpace(size)
	if color == "" || size == "" {
		return ErrVariantRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key{ProductID: product.ID, Color: color, Size: size}
	for i := range c.items {
		if keyOf(c.items[i]) == key {
			c.items[i].Quantity += quantity
			c.open = true
			c.touch()
			return nil
		}
	}
	c.items = append(c.items, models.CartItem{
		Product:       product,
		Quantity:      quantity,
		SelectedColor: color,
		SelectedSize:  size,
	})
	c.open = true
	c.touch()
	return nil
}

// RemoveItem drops the line. Removing a missing line does nothing.
func (c *Cart) RemoveItem(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

func (c *Cart) removeLocked(key Key) bool {
	for i := range c.items {
		if keyOf(c.items[i]) == key {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// UpdateQuantity sets the line's quantity. Zero or less removes the line like RemoveItem,
// so a missing line is not an error there.
func (c *Cart) UpdateQuantity(key Key, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(key)
		return nil
	}
	for i := range c.items {
		if keyOf(c.items[i]) == key {
			c.items[i].Quantity = quantity
			c.touch()
			return nil
		}
	}
	return ErrItemNotFound
}

// Quantity returns how many of the line are in the cart, 0 when there is no such line.
func (c *Cart) Quantity(key Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if keyOf(it) == key {
			return it.Quantity
		}
	}
	return 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = []models.CartItem{}
	c.touch()
}

func (c *Cart) Open()  { c.setOpen(func(bool) bool { return true }) }
func (c *Cart) Close() { c.setOpen(func(bool) bool { return false }) }
func (c *Cart) Toggle() {
	c.setOpen(func(open bool) bool { return !open })
}

func (c *Cart) setOpen(f func(bool) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = f(c.open)
	c.touch()
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Items returns a copy of the lines in the order they were added.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

func (c *Cart) TotalItems() int {
	return totalItems(c.Items())
}

// TotalPrice sums the lines using the unit price captured when each line was added.
func (c *Cart) TotalPrice() int64 {
	return totalPrice(c.Items())
}

func (c *Cart) lastUpdate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatedAt
}

func totalItems(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func totalPrice(items []models.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

// Line is a cart item as the storefront renders it.
type Line struct {
	Key string `json:"key"`
	models.CartItem
	Subtotal int64 `json:"subtotal"`
}

type View struct {
	ID         string `json:"id"`
	Items      []Line `json:"items"`
	IsOpen     bool   `json:"isOpen"`
	TotalItems int    `json:"totalItems"`
	TotalPrice int64  `json:"totalPrice"`
}

// View returns a consistent picture of the cart for rendering.
func (c *Cart) View() View {
	c.mu.Lock()
	items := append([]models.CartItem(nil), c.items...)
	open := c.open
	c.mu.Unlock()

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{Key: keyOf(it).String(), CartItem: it, Subtotal: it.Subtotal()})
	}
	return View{
		ID:         c.id,
		Items:      lines,
		IsOpen:     open,
		TotalItems: totalItems(items),
		TotalPrice: totalPrice(items),
	}
}
