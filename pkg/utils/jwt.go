package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role allowed to change staffing data
const RoleAdmin = "ADMIN"

var accessSecret string

// InitJWT sets the secret shared with the identity provider that issues access tokens
func InitJWT(secret string) {
	accessSecret = secret
}

// Claims represents JWT custom claims. Subject identifies the user.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Actor names the user in audit logs: the email when present, else the subject
func (c *Claims) Actor() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// GenerateAccessToken signs a token the way the identity provider does
func GenerateAccessToken(subject, email, role string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(accessSecret))
}

// ValidateAccessToken validates and parses a JWT access token
func ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(accessSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, errors.New("token has no subject")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
