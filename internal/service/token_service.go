package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token is not valid")

// tokenTTL is the validity window of issued tokens (100 hours).
const tokenTTL = 360000 * time.Second

// TokenService issues and verifies stateless signed tokens carrying a
// user id. Nothing is persisted; every verification re-checks the
// signature and expiry.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the user id embedded in a valid token.
func (s *TokenService) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", ErrInvalidToken
	}

	id, ok := user["id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}

	return id, nil
}
