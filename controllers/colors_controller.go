package controllers

import (
	"net/http"

	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/models"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetColors(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.Colors()})
	}
}

func GetColorsWithUsage(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.ColorsWithUsage()})
	}
}

func AddColor(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ColorDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.AddColor(models.ColorOption{Name: body.Name, Hex: body.Hex})
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"items": data.Colors})
	}
}

// UpdateColor renames or recolors a color. Products using it follow.
func UpdateColor(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ColorDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.UpdateColor(c.Param("name"), models.ColorOption{Name: body.Name, Hex: body.Hex})
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": data.Colors})
	}
}

// DeleteColor refuses to remove a color that products still use unless force=true is given,
// in which case those products keep the old name.
func DeleteColor(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		deleteFn := store.DeleteColor
		if utils.ParseBoolDefault(c.Query("force"), false) {
			deleteFn = store.ForceDeleteColor
		}
		data, err := deleteFn(name)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": data.Colors})
	}
}
