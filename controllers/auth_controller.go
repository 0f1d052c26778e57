package controllers

import (
	"net/http"

	"github.com/barinistanbul/storefront/auth"
	"github.com/barinistanbul/storefront/dto"
	"github.com/barinistanbul/storefront/middleware"
	"github.com/gin-gonic/gin"
)

func Login(guard auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		accessToken, ok := guard.Login(body.Password)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": accessToken,
		})
	}
}

// Logout revokes the bearer token if one was sent. It always succeeds.
func Logout(guard auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := middleware.BearerToken(c); token != "" {
			guard.Logout(token)
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
