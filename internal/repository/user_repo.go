package repository

import (
	"context"
	"errors"
	"io/fs"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/store"
)

const usersCollection = "users"

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// GetByUserName returns the first record matching userName, in collection
// order. Duplicate names are not deduplicated.
func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	var users []domain.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].UserName == userName {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create appends a user record. Only the seeding tool calls this; there is no
// registration endpoint.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	unlock := r.store.Lock(usersCollection)
	defer unlock()

	var users []domain.User
	if err := r.store.Load(usersCollection, &users); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	users = append(users, *u)
	return r.store.Save(usersCollection, users)
}
