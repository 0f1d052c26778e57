package controllers

import (
	"errors"
	"net/http"

	"github.com/barinistanbul/storefront/cart"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrCategoryNotFound),
		errors.Is(err, catalog.ErrColorNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrDuplicateProductID),
		errors.Is(err, catalog.ErrDuplicateCategory),
		errors.Is(err, catalog.ErrDuplicateColor):
		return http.StatusConflict
	case errors.Is(err, catalog.ErrValidation),
		errors.Is(err, catalog.ErrBlankName),
		errors.Is(err, catalog.ErrInvalidWANumber),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrVariantRequired),
		errors.Is(err, cart.ErrInvalidKey),
		errors.Is(err, cart.ErrEmptyCart):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log *zap.Logger, err error) {
	if re, ok := catalog.IsReferenceError(err); ok {
		c.JSON(http.StatusConflict, gin.H{"error": re.Error(), "count": re.Count})
		return
	}
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
