package middleware

import (
	"net/http"
	"strings"

	"github.com/barinistanbul/storefront/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextRole  = "role"
	ContextToken = "token"
)

// BearerToken returns the token from the Authorization header, or "" when there is none.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func AuthMiddleware(guard auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := BearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := guard.Authenticate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextRole, string(claims.Role))
		c.Set(ContextToken, tokenStr)
		c.Next()
	}
}
