package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is what a session cookie carries once its signature is verified.
type SessionClaims struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService signs and verifies session references handed to clients.
// The session itself lives server-side; the token only names it.
type TokenService interface {
	// Issue signs a reference to the session.
	Issue(sessionID, userID uuid.UUID, expiresAt time.Time) (string, error)

	// Parse verifies the signature and expiry and returns the claims.
	Parse(token string) (*SessionClaims, error)
}
