package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"quiz_backend/internal/domain"
	"quiz_backend/internal/repository"
	"quiz_backend/internal/service"
	"quiz_backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a user into the users collection and prints a valid token.
// Usage: create_test_user [userName] [password]
func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	userName := "Max"
	password := "123"
	if len(os.Args) > 1 {
		userName = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	st := store.New(dataDir)
	repo := repository.NewUserRepository(st)
	ctx := context.Background()

	existing, err := repo.GetByUserName(ctx, userName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("lookup failed: %v", err)
	}

	var u *domain.User
	if err == nil {
		u = existing
		log.Printf("user already exists userName=%s\n", u.UserName)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password failed: %v", err)
		}

		u = &domain.User{
			UserName: userName,
			Password: string(hash),
			Roles:    []string{"player"},
		}

		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}

		log.Printf("user created userName=%s\n", u.UserName)
	}

	// verify read
	u2, err := repo.GetByUserName(ctx, u.UserName)
	if err != nil {
		log.Fatalf("get by userName failed: %v", err)
	}
	log.Printf("fetched user userName=%s roles=%v\n", u2.UserName, u2.Roles)

	// initialize JWT and print token
	service.InitJWT()
	token, err := service.GenerateJWT(u2.UserName, u2.Roles)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
