package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	svc := NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func payloadWith(claims map[string]any) validateFunc {
	return func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:   "https://accounts.google.com",
			Audience: audience,
			Subject:  "google-sub-123",
			Claims:   claims,
		}, nil
	}
}

func TestAuthService_VerifyIDToken_Success(t *testing.T) {
	svc := newTestAuthService(payloadWith(map[string]any{
		"email":          "test@example.com",
		"email_verified": true,
		"name":           "Test User",
		"picture":        "https://example.com/a.png",
	}))

	user, err := svc.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	svc := newTestAuthService(payloadWith(map[string]any{
		"email":          "test@example.com",
		"email_verified": "false",
	}))

	_, err := svc.VerifyIDToken(context.Background(), "token")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_VerifyIDToken_ValidationFailure(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	_, err := svc.VerifyIDToken(context.Background(), "token")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestAuthService_VerifyIDToken_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "token")

	assert.ErrorIs(t, err, domainerrors.ErrOAuthNotConfigured)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
