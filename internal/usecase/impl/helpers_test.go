package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(sessionTTL time.Duration) *config.Config {
	return &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4},
		Session: &config.SessionConfig{TTL: sessionTTL},
	}
}

// expectTransaction runs fn against factory and returns whatever fn returns.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *domainerrors.BaseError
		kind domainerrors.Kind
	}{
		{"user", repository.ErrUserNotFound, domainerrors.ErrUserNotFound, domainerrors.KindNotFound},
		{"cart", errors.Wrap(repository.ErrCartNotFound, "lookup"), domainerrors.ErrCartNotFound, domainerrors.KindNotFound},
		{"cart item", repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound, domainerrors.KindNotFound},
		{"order", repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, domainerrors.KindNotFound},
		{"product", repository.ErrProductNotFound, domainerrors.ErrProductNotFound, domainerrors.KindNotFound},
		{"session", repository.ErrSessionNotFound, domainerrors.ErrSessionInvalid, domainerrors.KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translate(tt.err, "context")

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, domainerrors.KindOf(err))
		})
	}
}

func TestTranslate_PassesThrough(t *testing.T) {
	assert.NoError(t, translate(nil, "unused"))

	dbErr := errors.New("connection reset")
	err := translate(dbErr, "failed")
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))

	conflict := domainerrors.ErrCartAlreadyExists.WrapMessage("raced")
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(translate(conflict, "failed")))
}

func TestEnsureOwner(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, ensureOwner(owner, owner, domainerrors.ErrForbidden))

	err := ensureOwner(uuid.New(), owner, domainerrors.ErrCartOwnershipViolation)
	assert.ErrorIs(t, err, domainerrors.ErrCartOwnershipViolation)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))

	assert.Error(t, ensureOwner(uuid.Nil, uuid.Nil, domainerrors.ErrForbidden))
}
