package service

import (
	"context"
	"errors"
	"testing"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	initTestJWT(t)

	s := store.New(t.TempDir())

	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	users := []domain.User{
		{UserName: "Max", Password: string(hash), Roles: []string{"player"}},
	}
	if err := s.Save("users", users); err != nil {
		t.Fatalf("seed users failed: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(s))
}

func TestAuthenticateValidCredentials(t *testing.T) {
	auth := newAuthFixture(t)

	token, err := auth.Authenticate(context.Background(), "Max", "123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "Max" {
		t.Fatalf("expected subject Max, got %q", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "player" {
		t.Fatalf("expected roles [player], got %v", claims.Roles)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	auth := newAuthFixture(t)

	token, err := auth.Authenticate(context.Background(), "Max", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("no token must be issued on failure")
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	auth := newAuthFixture(t)

	_, err := auth.Authenticate(context.Background(), "Nobody", "123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateFirstMatchWins(t *testing.T) {
	initTestJWT(t)

	s := store.New(t.TempDir())
	hashA, _ := bcrypt.GenerateFromPassword([]byte("first"), bcrypt.MinCost)
	hashB, _ := bcrypt.GenerateFromPassword([]byte("second"), bcrypt.MinCost)
	users := []domain.User{
		{UserName: "Dup", Password: string(hashA), Roles: []string{"a"}},
		{UserName: "Dup", Password: string(hashB), Roles: []string{"b"}},
	}
	if err := s.Save("users", users); err != nil {
		t.Fatalf("seed users failed: %v", err)
	}

	auth := NewAuthService(repository.NewUserRepository(s))

	// only the first record in collection order is consulted
	if _, err := auth.Authenticate(context.Background(), "Dup", "first"); err != nil {
		t.Fatalf("expected first record to win: %v", err)
	}
	if _, err := auth.Authenticate(context.Background(), "Dup", "second"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected second record to be shadowed, got %v", err)
	}
}
