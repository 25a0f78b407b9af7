package repository

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/store"

	"github.com/google/uuid"
)

const gameRunsCollection = "game-runs"

type GameRunRepository struct {
	store *store.Store
}

func NewGameRunRepository(s *store.Store) *GameRunRepository {
	return &GameRunRepository{store: s}
}

// loadAll reads the run collection, treating a missing file as empty so a
// fresh data directory works without seeding.
func (r *GameRunRepository) loadAll() ([]domain.GameRun, error) {
	var runs []domain.GameRun
	if err := r.store.Load(gameRunsCollection, &runs); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return runs, nil
}

// Create appends a new run owned by userName and persists the collection.
func (r *GameRunRepository) Create(ctx context.Context, userName string) (*domain.GameRun, error) {
	unlock := r.store.Lock(gameRunsCollection)
	defer unlock()

	runs, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	run := domain.GameRun{
		ID:        uuid.NewString(),
		UserName:  userName,
		CreatedAt: time.Now().UnixMilli(),
		Responses: make(map[string]string),
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}

	runs = append(runs, run)
	if err := r.store.Save(gameRunsCollection, runs); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetOwned returns the run only if it exists and belongs to userName.
// Absence and ownership mismatch collapse into the same ErrForbidden.
func (r *GameRunRepository) GetOwned(ctx context.Context, runID, userName string) (*domain.GameRun, error) {
	runs, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for i := range runs {
		if runs[i].ID == runID && runs[i].OwnedBy(userName) {
			return &runs[i], nil
		}
	}
	return nil, domain.ErrForbidden
}

// SetResponse records an answer for a question on an owned run, overwriting
// any previous answer to the same question, and persists the collection.
func (r *GameRunRepository) SetResponse(ctx context.Context, runID, userName, questionID, answer string) (*domain.GameRun, error) {
	unlock := r.store.Lock(gameRunsCollection)
	defer unlock()

	runs, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	for i := range runs {
		if runs[i].ID != runID {
			continue
		}
		if !runs[i].OwnedBy(userName) {
			break
		}

		if runs[i].Responses == nil {
			runs[i].Responses = make(map[string]string)
		}
		runs[i].Responses[questionID] = answer

		if err := r.store.Save(gameRunsCollection, runs); err != nil {
			return nil, err
		}
		return &runs[i], nil
	}
	return nil, domain.ErrForbidden
}
