package service

import (
	"context"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/logger"
	"quiz_backend/internal/repository"
)

// GameRunService drives the run lifecycle: create, record answers, score.
// A run has no terminal state; results are computed on demand at any point
// and never mutate the run.
type GameRunService struct {
	runs      *repository.GameRunRepository
	questions *repository.QuestionRepository
}

func NewGameRunService(runs *repository.GameRunRepository, questions *repository.QuestionRepository) *GameRunService {
	return &GameRunService{runs: runs, questions: questions}
}

func (s *GameRunService) CreateRun(ctx context.Context, userName string) (*domain.GameRun, error) {
	return s.runs.Create(ctx, userName)
}

// SubmitResponse records answer for questionID on the run. Last write per
// question wins. Missing run and foreign run both return ErrForbidden.
func (s *GameRunService) SubmitResponse(ctx context.Context, runID, userName, questionID, answer string) (*domain.GameRun, error) {
	return s.runs.SetResponse(ctx, runID, userName, questionID, answer)
}

// GetResults scores an owned run against the current catalog. Response keys
// that no longer match a question are skipped rather than failing the whole
// report.
func (s *GameRunService) GetResults(ctx context.Context, runID, userName string) (*domain.RunResults, error) {
	run, err := s.runs.GetOwned(ctx, runID, userName)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	answerKey := make(map[string]string, len(questions))
	for i := range questions {
		answerKey[questions[i].ID] = questions[i].CorrectAnswer
	}

	results := make(map[string]bool, len(run.Responses))
	for questionID, answer := range run.Responses {
		correct, ok := answerKey[questionID]
		if !ok {
			logger.Warn("scoring: response references unknown question",
				"runId", run.ID, "questionId", questionID)
			continue
		}
		results[questionID] = answer == correct
	}

	return &domain.RunResults{
		ID:        run.ID,
		UserName:  run.UserName,
		CreatedAt: run.CreatedAt,
		Results:   results,
	}, nil
}
