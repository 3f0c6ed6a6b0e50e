package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/cleandrop/internal/models"
)

type jwtCustomClaims struct {
	UserID string      `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenClaims is what a verified token asserts about its bearer.
type TokenClaims struct {
	UserID string
	Role   models.Role
}

// GenerateToken creates a signed JWT for the provided user.
func GenerateToken(secret string, user models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &jwtCustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the embedded claims.
func ParseToken(secret, tokenString string) (TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return TokenClaims{}, err
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid && claims.UserID != "" {
		return TokenClaims{UserID: claims.UserID, Role: claims.Role}, nil
	}

	return TokenClaims{}, jwt.ErrTokenInvalidClaims
}
