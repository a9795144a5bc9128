package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every session token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// IssueToken signs an HS256 session token valid for 24 hours.
func IssueToken(secret []byte, c Claims) (string, error) {
	claims := jwt.MapClaims{
		"user_id": c.UserID,
		"email":   c.Email,
		"role":    c.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a session token and returns its claims.
func ParseToken(secret []byte, tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	var c Claims
	c.UserID, _ = mapClaims["user_id"].(string)
	c.Email, _ = mapClaims["email"].(string)
	c.Role, _ = mapClaims["role"].(string)
	if c.UserID == "" {
		return Claims{}, errors.New("token missing user id")
	}
	return c, nil
}
