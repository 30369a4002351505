package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Roles  []string
}

// TokenVerifier turns a bearer token into an Identity.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// Claims defines the custom claims for locally issued tokens.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates locally signed tokens, used in development and by
// internal callers.
type TokenService interface {
	TokenVerifier

	// GenerateToken signs a token for identity.
	GenerateToken(identity Identity) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
