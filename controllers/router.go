package controllers

import (
	"net/http"
	"time"

	"github.com/barinistanbul/storefront/auth"
	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/cart"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/middleware"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncStatus reports the state of the remote document.
type SyncStatus interface {
	Loaded() bool
	IsSaving() bool
}

type Deps struct {
	Catalog        *catalog.Store
	Sync           SyncStatus
	Carts          *cart.Registry
	Checkout       *cart.Checkout
	Guard          auth.Guard
	Images         blobstore.ImageUploader
	ImageValidator *utils.ImageValidator
	ImageOptimizer utils.ImageOptimizer
	AllowedOrigins []string
	Log            *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.ImageValidator == nil {
		d.ImageValidator = utils.NewImageValidator(5)
	}

	r := gin.New()
	// Cart line keys carry free-form color names, which may hold an escaped "/".
	r.UseRawPath = true
	r.UnescapePathValues = true

	allowedOrigins := map[string]bool{}
	for _, origin := range d.AllowedOrigins {
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/api/data", GetData(d.Catalog))
	r.GET("/api/status", GetStatus(d.Sync))

	r.GET("/products", GetProducts(d.Catalog))
	r.GET("/products/:id", GetProduct(d.Catalog))
	r.GET("/categories", GetCategories(d.Catalog))
	r.GET("/colors", GetColors(d.Catalog))
	r.GET("/settings", GetSettings(d.Catalog))

	carts := r.Group("/cart")
	{
		carts.POST("", CreateCart(d.Carts))
		carts.GET("/:cartId", GetCart(d.Carts))
		carts.DELETE("/:cartId", ClearCart(d.Carts))
		carts.POST("/:cartId/items", AddCartItem(d.Carts, d.Catalog, d.Log))
		carts.PATCH("/:cartId/items/:key", UpdateCartItem(d.Carts, d.Log))
		carts.DELETE("/:cartId/items/:key", RemoveCartItem(d.Carts))
		carts.POST("/:cartId/drawer/:action", SetDrawer(d.Carts))
		carts.POST("/:cartId/checkout", CheckoutCart(d.Carts, d.Checkout, d.Log))
	}

	r.POST("/auth/login", Login(d.Guard))
	r.POST("/auth/logout", Logout(d.Guard))

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(d.Guard))
	{
		admin.POST("/data", ImportData(d.Catalog, d.Log))
		admin.GET("/stats", GetStats(d.Catalog))

		admin.GET("/products", GetAdminProducts(d.Catalog))
		admin.POST("/products", AddProduct(d.Catalog, d.Log))
		admin.PATCH("/products/:id", UpdateProduct(d.Catalog, d.Log))
		admin.DELETE("/products/:id", DeleteProduct(d.Catalog, d.Log))
		admin.PATCH("/products/:id/stock", AdjustStock(d.Catalog, d.Log))

		admin.GET("/categories", GetCategoriesWithUsage(d.Catalog))
		admin.POST("/categories", AddCategory(d.Catalog, d.Log))
		admin.PATCH("/categories/:name", RenameCategory(d.Catalog, d.Log))
		admin.DELETE("/categories/:name", DeleteCategory(d.Catalog, d.Log))

		admin.GET("/colors", GetColorsWithUsage(d.Catalog))
		admin.POST("/colors", AddColor(d.Catalog, d.Log))
		admin.PATCH("/colors/:name", UpdateColor(d.Catalog, d.Log))
		admin.DELETE("/colors/:name", DeleteColor(d.Catalog, d.Log))

		admin.PATCH("/settings", UpdateSettings(d.Catalog, d.Log))
		admin.PATCH("/settings/hero", UpdateHeroTexts(d.Catalog, d.Log))
		admin.PATCH("/settings/social", UpdateSocialLinks(d.Catalog, d.Log))

		admin.GET("/orders", GetOrders(d.Catalog))

		admin.POST("/upload", UploadImage(d.Images, d.ImageValidator, d.ImageOptimizer, d.Log))
	}

	return r
}
