// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sentinelMapping pairs a persistence sentinel with the domain error callers see.
type sentinelMapping struct {
	sentinel error
	domain   *domainerrors.BaseError
}

var sentinelMappings = []sentinelMapping{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrProductNotFound, domainerrors.ErrProductNotFound},
	{repository.ErrCartNotFound, domainerrors.ErrCartNotFound},
	{repository.ErrCartItemNotFound, domainerrors.ErrCartItemNotFound},
	{repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound},
	{repository.ErrPaymentMethodNotFound, domainerrors.ErrPaymentMethodNotFound},
	{repository.ErrSessionNotFound, domainerrors.ErrSessionInvalid},
}

// translate converts repository sentinels to domain errors and wraps everything
// else with message. Errors that already carry a kind pass through wrapped.
func translate(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, m := range sentinelMappings {
		if errors.Is(err, m.sentinel) {
			return m.domain.WrapMessage(message)
		}
	}

	return errors.Wrap(err, message)
}

// ensureOwner rejects access to a record owned by someone other than actorID.
func ensureOwner(actorID, ownerID uuid.UUID, denial *domainerrors.BaseError) error {
	if actorID == uuid.Nil || actorID != ownerID {
		return denial.WrapMessage("record belongs to another user")
	}

	return nil
}
