package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/config"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:   "test_secret_key_very_long_for_testing",
			Issuer:   "todo-api",
			Audience: "todo-api",
			Expiry:   7 * 24 * time.Hour,
		},
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, expiresAt, err := jwtService.Issue(42, "a@x.com", "ann")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Expiry is roughly 7 days out.
	week := 7 * 24 * time.Hour
	assert.WithinDuration(t, time.Now().Add(week), expiresAt, time.Minute)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "ann", claims.Username)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	verifying, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuing.Issue(1, "a@x.com", "ann")
	require.NoError(t, err)

	claims, err := verifying.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Expiry = -time.Minute
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, _, err := jwtService.Issue(1, "a@x.com", "ann")
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	issuerCfg := newTestJWTConfig()
	issuerCfg.JWT.Issuer = "someone-else"
	issuing, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	verifying, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, _, err := issuing.Issue(1, "a@x.com", "ann")
	require.NoError(t, err)

	claims, err := verifying.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Secret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
