package repository

import (
	"context"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/store"
)

const questionsCollection = "questions"

type QuestionRepository struct {
	store *store.Store
}

func NewQuestionRepository(s *store.Store) *QuestionRepository {
	return &QuestionRepository{store: s}
}

// GetAll reloads the full question collection from disk. The catalog is
// seeded out-of-band, so a missing file surfaces as a store error.
func (r *QuestionRepository) GetAll(ctx context.Context) ([]domain.Question, error) {
	var questions []domain.Question
	if err := r.store.Load(questionsCollection, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	questions, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// ReplaceAll rewrites the whole catalog. Used by the seeding tool.
func (r *QuestionRepository) ReplaceAll(ctx context.Context, questions []domain.Question) error {
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return err
		}
	}

	unlock := r.store.Lock(questionsCollection)
	defer unlock()

	return r.store.Save(questionsCollection, questions)
}
