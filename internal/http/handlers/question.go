package handlers

import (
	"errors"
	"net/http"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListQuestions returns every question with the answer key stripped.
func (h *Handler) ListQuestions(c *gin.Context) {
	questions, err := h.Catalog.ListQuestions(c.Request.Context())
	if err != nil {
		logger.Error("list questions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *Handler) GetQuestion(c *gin.Context) {
	question, err := h.Catalog.GetQuestion(c.Request.Context(), c.Param("questionId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		logger.Error("get question failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read question"})
		return
	}

	c.JSON(http.StatusOK, question)
}
