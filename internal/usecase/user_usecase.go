// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Address  string
}

// UpdateUserInput carries a partial profile update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Username *string
	Password *string
	Address  *string
}

// AddPaymentMethodInput defines a payment method to store for a user.
type AddPaymentMethodInput struct {
	Provider string
	Last4    string
}

// UserUsecase defines the interface for user-related business operations.
// Operations other than Register act on behalf of actorID and only on that user's own records.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetByEmail(ctx context.Context, actorID uuid.UUID, email string) (*entity.User, error)
	UpdateByEmail(ctx context.Context, actorID uuid.UUID, email string, input *UpdateUserInput) (*entity.User, error)
	DeleteByEmail(ctx context.Context, actorID uuid.UUID, email string) error
	ListPaymentMethods(ctx context.Context, actorID, userID uuid.UUID) ([]*entity.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, actorID, userID uuid.UUID, input *AddPaymentMethodInput) (*entity.PaymentMethod, error)
}
