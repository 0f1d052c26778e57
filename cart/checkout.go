package cart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/barinistanbul/storefront/models"
	"github.com/barinistanbul/storefront/utils"
)

var ErrEmptyCart = errors.New("cart is empty")

const isoMillis = "2006-01-02T15:04:05.000Z"

// Catalog is what checkout needs from the catalog store.
type Catalog interface {
	AddOrder(models.Order) (models.AdminData, error)
	Settings() models.SiteSettings
}

// Receipt is the result of a checkout: the recorded order and the WhatsApp hand-off.
type Receipt struct {
	Order   models.Order `json:"order"`
	Message string       `json:"message"`
	URL     string       `json:"url"`
}

type Checkout struct {
	catalog     Catalog
	clearOnDone bool
	now         func() time.Time

	mu     sync.Mutex
	lastID int64
}

// NewCheckout records orders in cat. When clearOnDone is set the cart is emptied after a
// successful checkout, otherwise it is left as it was.
func NewCheckout(cat Catalog, clearOnDone bool) *Checkout {
	return &Checkout{catalog: cat, clearOnDone: clearOnDone, now: time.Now}
}

// Checkout records the cart as an order and builds the WhatsApp message for it. Names and
// prices come from the cart lines, so later catalog edits do not change the order.
func (co *Checkout) Checkout(c *Cart) (Receipt, error) {
	items := c.Items()
	if len(items) == 0 {
		return Receipt{}, ErrEmptyCart
	}

	now := co.now().UTC()
	order := models.Order{
		ID:        co.nextID(now),
		Date:      now.Format(isoMillis),
		Items:     make([]models.OrderItem, 0, len(items)),
		Total:     totalPrice(items),
		ItemCount: totalItems(items),
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       it.Product.Price,
		})
	}

	if _, err := co.catalog.AddOrder(order); err != nil {
		return Receipt{}, fmt.Errorf("record order: %w", err)
	}

	message := WhatsAppMessage(items, order.Total)
	receipt := Receipt{
		Order:   order,
		Message: message,
		URL:     WhatsAppURL(co.catalog.Settings().WANumber, message),
	}
	if co.clearOnDone {
		c.Clear()
	}
	return receipt, nil
}

func (co *Checkout) nextID(now time.Time) string {
	co.mu.Lock()
	defer co.mu.Unlock()
	id := now.UnixMilli()
	if id <= co.lastID {
		id = co.lastID + 1
	}
	co.lastID = id
	return strconv.FormatInt(id, 10)
}

// WhatsAppMessage renders the order text sent to the shop.
func WhatsAppMessage(items []models.CartItem, total int64) string {
	var b strings.Builder
	b.WriteString("Halo Barinistanbul, saya ingin memesan:\n\n")
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (Warna: %s, Ukuran: %s, %dx) @ %s",
			it.Product.Name, it.SelectedColor, it.SelectedSize, it.Quantity, utils.FormatRupiah(it.Product.Price))
	}
	fmt.Fprintf(&b, "\n\nTotal: %s\n\nMohon info selanjutnya.", utils.FormatRupiah(total))
	return b.String()
}

func WhatsAppURL(waNumber, message string) string {
	return "https://wa.me/" + waNumber + "?text=" + utils.EncodeURIComponent(message)
}
