package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadImage stores one product image from the multipart field "file" and returns its
// public URL.
func UploadImage(images blobstore.ImageUploader, v *utils.ImageValidator, optimizer utils.ImageOptimizer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, v.MaxSize()+1<<20)
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
			return
		}

		contentType, err := v.ValidateImage(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
			return
		}

		optimized, changed, err := optimizer.Optimize(data, contentType)
		if err != nil {
			log.Warn("image not optimized", zap.String("file", fh.Filename), zap.Error(err))
		} else if changed {
			log.Debug("image downscaled", zap.Int("before", len(data)), zap.Int("after", len(optimized)))
			data = optimized
		}

		name := blobstore.ImageObjectName(time.Now(), filepath.Ext(fh.Filename))
		url, err := images.PutImage(c.Request.Context(), name, data, contentType)
		if err != nil {
			log.Error("image upload failed", zap.String("object", name), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": url, "object": name, "contentType": contentType, "size": len(data)})
	}
}
