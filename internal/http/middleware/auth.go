package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT verifies the Bearer token and stores the acting identity in the gin
// context under "subject" and "roles".
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := service.ParseJWT(parts[1])
		if err != nil {
			if errors.Is(err, domain.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

// Subject extracts the authenticated identity set by JWT.
func Subject(c *gin.Context) (string, bool) {
	v, ok := c.Get("subject")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
