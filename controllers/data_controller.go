package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/statesync"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetData(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": store.Snapshot()})
	}
}

func GetStatus(sync SyncStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sync == nil {
			c.JSON(http.StatusOK, gin.H{"loaded": true, "saving": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loaded": sync.Loaded(), "saving": sync.IsSaving()})
	}
}

// ImportData replaces the whole document. Missing fields are filled the same way a stored
// document is when it is loaded.
func ImportData(store *catalog.Store, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		data, err := statesync.Decode(body, statesync.DecodeOptions{})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json"})
			return
		}

		data, err = store.Import(data)
		if err != nil {
			respondError(c, log, err)
			return
		}
		log.Info("document imported", zap.Int("products", len(data.Products)), zap.Int("orders", len(data.Orders)))
		c.JSON(http.StatusOK, gin.H{"data": data})
	}
}

func GetStats(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Stats(time.Now()))
	}
}

func GetOrders(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": store.Orders()})
	}
}
