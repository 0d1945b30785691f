package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when a session does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the server-side session store.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindActiveByID returns the session only while it is unexpired.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes sessions that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
