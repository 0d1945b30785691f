package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ClientInfo describes where a login came from.
type ClientInfo struct {
	UserAgent string
	IP        string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Client   ClientInfo
}

// GoogleLoginInput carries a Google Sign-In ID token.
type GoogleLoginInput struct {
	IDToken string
	Client  ClientInfo
}

// LoginOutput returns the new session and the signed token naming it.
type LoginOutput struct {
	User    *entity.User
	Session *entity.Session
	Token   string
	Created bool // set when a Google login registered a new account
}

// AuthUsecase manages logins and server-side sessions.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginWithGoogle(ctx context.Context, input *GoogleLoginInput) (*LoginOutput, error)

	// Logout destroys the session. Logging out twice is not an error.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// ResolveSession turns a session token into the authenticated principal.
	ResolveSession(ctx context.Context, token string) (*entity.Identity, error)

	// CleanupExpiredSessions removes expired sessions and reports how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
