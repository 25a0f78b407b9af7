package handlers

import (
	"errors"
	"net/http"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/http/middleware"
	"quiz_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Authenticate exchanges HTTP Basic credentials for a bearer token.
func (h *Handler) Authenticate(c *gin.Context) {
	userName, password, ok := c.Request.BasicAuth()
	if !ok {
		c.Header("WWW-Authenticate", `Basic realm="quiz"`)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "basic credentials required"})
		return
	}

	token, err := h.Auth.Authenticate(c.Request.Context(), userName, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			middleware.AuthAttempts.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		middleware.AuthAttempts.WithLabelValues("error").Inc()
		logger.Error("authenticate failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication unavailable"})
		return
	}

	middleware.AuthAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}
