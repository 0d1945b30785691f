// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves the user linked to a Google account.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateByEmail applies changes in a single statement; nil fields keep
	// their stored value.
	UpdateByEmail(ctx context.Context, email string, changes entity.UserChanges) (*entity.User, error)

	// LinkGoogleID attaches a Google account to an existing user.
	LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error

	// DeleteByEmail removes the user and everything that cascades from it.
	DeleteByEmail(ctx context.Context, email string) error
}
