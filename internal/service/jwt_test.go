package service

import (
	"errors"
	"testing"
	"time"

	"quiz_backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()
}

func TestGenerateAndParseJWT(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("Max", []string{"player", "admin"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "Max" {
		t.Fatalf("expected subject Max, got %q", claims.Subject)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "player" || claims.Roles[1] != "admin" {
		t.Fatalf("roles not preserved: %v", claims.Roles)
	}
}

func TestTokenExpiryIs24Hours(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("Max", nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		t.Fatalf("raw parse failed: %v", err)
	}

	exp, ok := parsed.Claims.(jwt.MapClaims)["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing")
	}

	want := time.Now().Add(24 * time.Hour).Unix()
	if diff := int64(exp) - want; diff < -5 || diff > 5 {
		t.Fatalf("expected expiry 24h from now, off by %ds", diff)
	}
}

func TestParseJWTTampered(t *testing.T) {
	initTestJWT(t)

	token, err := GenerateJWT("Max", nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseJWT(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	initTestJWT(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"subject": "Max",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("another-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseJWT(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseJWTExpired(t *testing.T) {
	initTestJWT(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"subject": "Max",
		"roles":   []string{"player"},
		"exp":     time.Now().Add(-time.Minute).Unix(),
		"iat":     time.Now().Add(-25 * time.Hour).Unix(),
	})
	signed, err := expired.SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseJWT(signed); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestParseJWTMissingSubject(t *testing.T) {
	initTestJWT(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"roles": []string{"player"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := ParseJWT(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
