package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// tokenKey is the gin context key holding the caller's bearer token.
const tokenKey = "token"

// AuthMiddleware requires an "Authorization: Bearer <token>" header and stores
// the token for the handlers. Whether the token belongs to anyone is decided
// by the services, not here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

// Token returns the token stored by AuthMiddleware.
func Token(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
