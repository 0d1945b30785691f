package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_IssueAndParse(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	sessionID, userID := uuid.New(), uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := svc.Issue(sessionID, userID, expiresAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, userID, claims.UserID)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret-a"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestJWTConfig("secret-b"))
	require.NoError(t, err)

	expired, err := svc.Issue(uuid.New(), uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)
	foreign, err := other.Issue(uuid.New(), uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	wrongType := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":  uuid.NewString(),
		"sub":  uuid.NewString(),
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	wrongTypeToken, err := wrongType.SignedString([]byte("secret-a"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"expired":      expired,
		"wrong secret": foreign,
		"wrong type":   wrongTypeToken,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Parse(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
