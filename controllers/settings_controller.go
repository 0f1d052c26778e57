package controllers

import (
	"net/http"

	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetSettings(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Settings())
	}
}

func UpdateSettings(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateSettingsDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.UpdateSettings(body)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, data.Settings)
	}
}

func UpdateHeroTexts(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateHeroTextsDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.UpdateHeroTexts(body)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, data.Settings)
	}
}

func UpdateSocialLinks(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateSocialLinksDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := store.UpdateSocialLinks(body)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, data.Settings)
	}
}
