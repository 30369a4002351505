package auth

import (
	"context"
	"testing"
	"time"

	"careconnect/config"
	"careconnect/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key_very_long_for_testing"
	cfg.Auth.JWTIssuer = "careconnect"
	cfg.Auth.TokenDuration = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService(t)
	identity := service.Identity{UserID: "uid-1", Email: "pat@example.com", Name: "Pat", Roles: []string{"patient"}}

	token, err := svc.GenerateToken(identity)
	require.NoError(t, err)

	got, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &identity, got)
	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	token, err := svc.GenerateToken(service.Identity{UserID: "uid-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsWrongSecretAndIssuer(t *testing.T) {
	svc := newTestJWTService(t)

	other := &jwtService{secret: "another_secret", issuer: "careconnect", ttl: time.Hour, now: time.Now}
	forged, err := other.GenerateToken(service.Identity{UserID: "uid-1"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign := &jwtService{secret: svc.secret, issuer: "someone-else", ttl: time.Hour, now: time.Now}
	token, err := foreign.GenerateToken(service.Identity{UserID: "uid-1"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)
	claims := service.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "uid-1",
		Issuer:    "careconnect",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(svc.secret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RequiresSecretAndSubject(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = newTestJWTService(t).GenerateToken(service.Identity{})
	assert.Error(t, err)
}
