package service

import (
	"context"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/repository"
)

// CatalogService exposes the question set with the answer key stripped.
// Every call re-reads the collection; the catalog is never cached.
type CatalogService struct {
	questions *repository.QuestionRepository
}

func NewCatalogService(questions *repository.QuestionRepository) *CatalogService {
	return &CatalogService{questions: questions}
}

func (s *CatalogService) ListQuestions(ctx context.Context) ([]domain.QuestionView, error) {
	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, questions[i].View())
	}
	return views, nil
}

func (s *CatalogService) GetQuestion(ctx context.Context, id string) (*domain.QuestionView, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := q.View()
	return &view, nil
}
