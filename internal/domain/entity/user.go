// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered shopper.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Display name chosen at registration.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; empty for accounts created through Google sign-in.
	Address      string    // Free-form shipping address.
	GoogleID     *string   // Google 'sub' claim when the account is linked.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can log in with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// UserChanges carries a partial update. Nil fields keep their stored value.
type UserChanges struct {
	Username     *string
	PasswordHash *string
	Address      *string
}
