package controllers

import (
	"net/http"
	"strings"

	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const relatedProductsLimit = 4

// GetProducts serves the storefront grid. Out of stock products are left out.
func GetProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.ProductFilter{
			Category: strings.TrimSpace(c.Query("category")),
			Color:    strings.TrimSpace(c.Query("color")),
			Query:    c.Query("q"),
		}
		items := store.FilterProducts(filter)
		total := len(items)
		if limit := utils.ParseIntDefault(c.Query("limit"), 0); limit > 0 && limit < total {
			items = items[:limit]
		}

		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"total":    total,
			"category": filter.Category,
		})
	}
}

// GetAdminProducts lists products including those without stock unless inStock=true.
func GetAdminProducts(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := store.FilterProducts(catalog.ProductFilter{
			Category:          strings.TrimSpace(c.Query("category")),
			Color:             strings.TrimSpace(c.Query("color")),
			Query:             c.Query("q"),
			IncludeOutOfStock: !utils.ParseBoolDefault(c.Query("inStock"), false),
		})
		c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
	}
}

func GetProduct(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, ok := store.Product(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		colors, err := store.ProductColors(id)
		if err != nil {
			colors = []string{product.Color}
		}

		c.JSON(http.StatusOK, gin.H{
			"product":       product,
			"slug":          utils.GenerateSlug(product.Name),
			"price":         utils.FormatRupiah(product.Price),
			"detailLines":   product.DetailLines(),
			"shippingLines": product.ShippingLines(),
			"colors":        colors,
			"sizes":         models.AvailableSizes,
			"related":       store.RelatedProducts(id, relatedProductsLimit),
		})
	}
}

func AddProduct(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.AddProduct(body.ToModel())
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, data.Products[len(data.Products)-1])
	}
}

func UpdateProduct(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body dto.UpdateProductDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json", "details": err.Error()})
			return
		}
		if body.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		if _, err := store.UpdateProduct(id, body); err != nil {
			respondError(c, log, err)
			return
		}
		product, _ := store.Product(id)
		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := store.DeleteProduct(c.Param("id")); err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func AdjustStock(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body dto.AdjustStockDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := store.AdjustStock(id, body.Delta); err != nil {
			respondError(c, log, err)
			return
		}
		product, _ := store.Product(id)
		c.JSON(http.StatusOK, gin.H{"id": product.ID, "stock": product.Stock})
	}
}
