package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecobin/config"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test-secret"

	return cfg
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_ValidateGarbageToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "other-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(7, "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken(7, "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
