package handlers

import (
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"quiz_backend/internal/store"
)

type Handler struct {
	Store    *store.Store
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	GameRuns *service.GameRunService
}

func NewHandler(s *store.Store) *Handler {
	users := repository.NewUserRepository(s)
	questions := repository.NewQuestionRepository(s)
	runs := repository.NewGameRunRepository(s)

	return &Handler{
		Store:    s,
		Auth:     service.NewAuthService(users),
		Catalog:  service.NewCatalogService(questions),
		GameRuns: service.NewGameRunService(runs, questions),
	}
}
