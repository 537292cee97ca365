package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity context the external identity provider
// hands to every request: a numeric user id and a role. The core never
// re-validates credentials beyond checking this token's signature.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Service validates identity tokens issued by the external provider
type Service struct {
	secret []byte
}

// NewService creates a new auth service with the shared signing secret
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// ValidateToken parses and verifies a JWT and returns its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no user id")
	}
	return claims, nil
}

// IssueToken signs a token for the given identity. Used by tests and local
// tooling; production tokens come from the identity provider.
func (s *Service) IssueToken(userID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: userID,
		Role:   role,
	})
	return token.SignedString(s.secret)
}
