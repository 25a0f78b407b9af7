package handlers

import (
	"errors"
	"net/http"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/http/middleware"
	"quiz_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

type SubmitResponseRequest struct {
	QuestionID  string `json:"questionId" binding:"required"`
	AnswerIndex string `json:"answerIndex" binding:"required"`
}

// CreateRun starts a new empty run owned by the authenticated identity.
func (h *Handler) CreateRun(c *gin.Context) {
	subject, ok := middleware.Subject(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	run, err := h.GameRuns.CreateRun(c.Request.Context(), subject)
	if err != nil {
		logger.Error("create run failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game run"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"runId": run.ID, "userName": run.UserName})
}

// SubmitResponse records an answer on an owned run; resubmitting the same
// question overwrites the earlier answer.
func (h *Handler) SubmitResponse(c *gin.Context) {
	subject, ok := middleware.Subject(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and answerIndex are required"})
		return
	}

	run, err := h.GameRuns.SubmitResponse(c.Request.Context(), c.Param("runId"), subject, req.QuestionID, req.AnswerIndex)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "run not found or unauthorized"})
			return
		}
		logger.Error("submit response failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "responses updated", "gameRun": run})
}

// GetResults scores an owned run on demand.
func (h *Handler) GetResults(c *gin.Context) {
	subject, ok := middleware.Subject(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	results, err := h.GameRuns.GetResults(c.Request.Context(), c.Param("runId"), subject)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "run not found or unauthorized"})
			return
		}
		logger.Error("get results failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute results"})
		return
	}

	c.JSON(http.StatusOK, results)
}
