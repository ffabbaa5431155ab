// Package auth validates bearer tokens and carries the acting user's
// id through the request context. Reconciliations and imports record
// who performed them; everything else about the user lives elsewhere.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims this service understands. Subject holds the
// user id as a UUID string.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	if tokenString == "" || len(secret) == 0 {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearer returns the token from an Authorization header value,
// or "" when the header is absent or not a bearer scheme.
func ExtractBearer(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}
