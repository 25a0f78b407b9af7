package service

import (
	"context"
	"errors"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/logger"
	"quiz_backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate verifies the userName/password pair against the stored bcrypt
// hash and issues a token. Unknown users and wrong passwords are both
// reported as ErrInvalidCredentials; store failures pass through unchanged.
func (s *AuthService) Authenticate(ctx context.Context, userName, password string) (string, error) {
	user, err := s.users.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("auth: user not found", "userName", userName)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Debug("auth: password mismatch", "userName", userName)
		return "", domain.ErrInvalidCredentials
	}

	return GenerateJWT(user.UserName, user.Roles)
}
