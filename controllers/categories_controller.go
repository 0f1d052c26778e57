package controllers

import (
	"net/http"

	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.Categories()})
	}
}

// GetCategoriesWithUsage adds the product count the admin list shows next to each name.
func GetCategoriesWithUsage(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.CategoriesWithUsage()})
	}
}

func AddCategory(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.AddCategory(body.Name)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"items": data.Categories})
	}
}

func RenameCategory(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RenameCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.RenameCategory(c.Param("name"), body.Name)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": data.Categories})
	}
}

// DeleteCategory refuses to remove a category that products still use unless force=true is given,
// in which case those products keep the old name.
func DeleteCategory(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		deleteFn := store.DeleteCategory
		if utils.ParseBoolDefault(c.Query("force"), false) {
			deleteFn = store.ForceDeleteCategory
		}
		data, err := deleteFn(name)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": data.Categories})
	}
}
