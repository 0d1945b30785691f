// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes, so longer passwords are rejected outright.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
	maxLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{
		cost:      bcrypt.DefaultCost,
		minLength: 8,
		maxLength: bcryptMaxPasswordBytes,
	}

	if cfg == nil {
		return h
	}
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		h.cost = cfg.Auth.BcryptCost
	}
	if ps := cfg.PasswordStrength; ps != nil {
		if ps.MinLength > 0 {
			h.minLength = ps.MinLength
		}
		if ps.MaxLength > 0 && ps.MaxLength <= bcryptMaxPasswordBytes {
			h.maxLength = ps.MaxLength
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured length bounds.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	if length < h.minLength || len(password) > h.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			fmt.Sprintf("password must be between %d and %d characters", h.minLength, h.maxLength),
		)
	}

	return nil
}
