package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a user authenticated.
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeGoogle ProviderType = "google"
)

// Session is a server-side login record. The client only ever holds a signed
// reference to its ID.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Provider  ProviderType
	UserAgent string
	IP        string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Email     string
	Username  string
}
