package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for a given user and role.
	GenerateToken(userID uint, role string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
