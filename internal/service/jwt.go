package service

import (
	"errors"
	"os"
	"time"

	"quiz_backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

const tokenTTL = 24 * time.Hour

func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

// Claims is the identity carried by a token.
type Claims struct {
	Subject string
	Roles   []string
}

// GenerateJWT issues a signed token asserting subject and roles, valid for
// 24 hours from issuance.
func GenerateJWT(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"subject": subject,
		"roles":   roles,
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseJWT verifies signature and time claims and returns the embedded
// identity. Expiry is reported distinctly from every other validation
// failure.
func ParseJWT(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	subject, ok := mapClaims["subject"].(string)
	if !ok || subject == "" {
		return nil, domain.ErrInvalidToken
	}

	var roles []string
	if raw, ok := mapClaims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}

	return &Claims{Subject: subject, Roles: roles}, nil
}
