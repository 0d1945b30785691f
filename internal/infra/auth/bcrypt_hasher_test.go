package auth

import (
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig() *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72},
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	password := "correct horse"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashRejectsLengthOutOfBounds(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())

	for _, password := range []string{"", "short", strings.Repeat("x", 73)} {
		_, err := hasher.Hash(password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, "password of length %d", len(password))
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.NoError(t, hasher.ValidatePasswordStrength("eightchr"))
	assert.Error(t, hasher.ValidatePasswordStrength("seven77"))
}
