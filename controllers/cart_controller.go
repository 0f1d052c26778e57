package controllers

import (
	"net/http"
	"strings"

	"github.com/barinistanbul/storefront/cart"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func cartFrom(c *gin.Context, carts *cart.Registry) (*cart.Cart, bool) {
	ct, ok := carts.Get(c.Param("cartId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return nil, false
	}
	return ct, true
}

func keyFrom(c *gin.Context) (cart.Key, bool) {
	key, err := cart.ParseKey(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return cart.Key{}, false
	}
	return key, true
}

func CreateCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := carts.Create()
		c.JSON(http.StatusCreated, ct.View())
	}
}

func GetCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

func ClearCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}
		ct.Clear()
		c.JSON(http.StatusOK, ct.View())
	}
}

// AddCartItem puts a product variant in the cart. An omitted quantity means one. The line may
// never hold more than the product's stock.
func AddCartItem(carts *cart.Registry, store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}

		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Quantity == 0 {
			body.Quantity = 1
		}
		if body.Size != "" && !models.IsAvailableSize(body.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown size", "sizes": models.AvailableSizes})
			return
		}

		product, found := store.Product(body.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		key := cart.Key{ProductID: product.ID, Color: strings.TrimSpace(body.Color), Size: strings.TrimSpace(body.Size)}
		if body.Quantity > 0 && ct.Quantity(key)+body.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "not enough stock",
				"available": max(product.Stock-ct.Quantity(key), 0),
			})
			return
		}

		if err := ct.AddItem(product, body.Quantity, body.Color, body.Size); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

func UpdateCartItem(carts *cart.Registry, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}
		key, ok := keyFrom(c)
		if !ok {
			return
		}

		var body dto.UpdateCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := ct.UpdateQuantity(key, body.Quantity); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, ct.View())
	}
}

func RemoveCartItem(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}
		key, ok := keyFrom(c)
		if !ok {
			return
		}
		ct.RemoveItem(key)
		c.JSON(http.StatusOK, ct.View())
	}
}

func SetDrawer(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}
		switch c.Param("action") {
		case "open":
			ct.Open()
		case "close":
			ct.Close()
		case "toggle":
			ct.Toggle()
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown drawer action"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"isOpen": ct.IsOpen()})
	}
}

func CheckoutCart(carts *cart.Registry, checkout *cart.Checkout, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct, ok := cartFrom(c, carts)
		if !ok {
			return
		}

		receipt, err := checkout.Checkout(ct)
		if err != nil {
			respondError(c, log, err)
			return
		}
		log.Info("order placed",
			zap.String("order_id", receipt.Order.ID),
			zap.Int64("total", receipt.Order.Total),
			zap.Int("items", receipt.Order.ItemCount))
		c.JSON(http.StatusCreated, receipt)
	}
}
