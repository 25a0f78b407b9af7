package http

import (
	"time"

	"quiz_backend/internal/config"
	"quiz_backend/internal/http/handlers"
	"quiz_backend/internal/http/middleware"
	"quiz_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store, cfg *config.Config, version string) {
	h := handlers.NewHandler(s)
	healthHandler := handlers.NewHealthHandler(s, version)

	// Health checks (no auth, no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// The in-memory limiter keeps brute-force protection alive when Redis is
	// absent; the Redis limiter covers multi-replica setups and fails open.
	authWindow := time.Duration(cfg.AuthRateWindow) * time.Second
	r.POST("/authenticate",
		middleware.SimpleRateLimit(cfg.AuthRateLimit, authWindow),
		middleware.RedisRateLimit(cfg.AuthRateLimit, authWindow),
		h.Authenticate)

	// Run mutations are limited per identity, not per IP
	submitWindow := time.Duration(cfg.SubmitRateWindow) * time.Second
	runRL := middleware.SubjectRateLimit(cfg.SubmitRateLimit, submitWindow)

	protected := r.Group("")
	protected.Use(middleware.JWT())
	{
		protected.GET("/questions", h.ListQuestions)
		protected.GET("/questions/:questionId", h.GetQuestion)

		protected.POST("/game-runs", runRL, h.CreateRun)
		protected.PUT("/game-runs/:runId/responses", runRL, h.SubmitResponse)
		protected.GET("/game-runs/:runId/results", h.GetResults)
	}
}
