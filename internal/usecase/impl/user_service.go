package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	paymentMethodRepo repository.PaymentMethodRepository
	hasher            service.PasswordHasher
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	PaymentMethodRepo repository.PaymentMethodRepository
	Hasher            service.PasswordHasher
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:          params.UserRepo,
		paymentMethodRepo: params.PaymentMethodRepo,
		hasher:            params.Hasher,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account after checking the email is free.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("user_id", user.ID))

	return user, nil
}

// GetByEmail returns the actor's own account.
func (srv *userService) GetByEmail(ctx context.Context, actorID uuid.UUID, email string) (*entity.User, error) {
	return srv.ownedUser(ctx, actorID, email)
}

// UpdateByEmail applies a partial update. A provided password is validated and
// hashed; an omitted one keeps the stored hash.
func (srv *userService) UpdateByEmail(ctx context.Context, actorID uuid.UUID, email string, input *usecase.UpdateUserInput) (*entity.User, error) {
	if _, err := srv.ownedUser(ctx, actorID, email); err != nil {
		return nil, err
	}

	changes := entity.UserChanges{
		Username: input.Username,
		Address:  input.Address,
	}

	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, errors.Wrap(err, "password does not meet security requirements")
		}

		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}
		changes.PasswordHash = &hashedPassword
	}

	user, err := srv.userRepo.UpdateByEmail(ctx, email, changes)
	if err != nil {
		srv.log(ctx).Error("Failed to update user", slog.String("email", email), slog.Any("error", err))

		return nil, translate(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("user_id", user.ID), slog.Bool("password_changed", changes.PasswordHash != nil))

	return user, nil
}

// DeleteByEmail removes the actor's own account and everything it owns.
func (srv *userService) DeleteByEmail(ctx context.Context, actorID uuid.UUID, email string) error {
	if _, err := srv.ownedUser(ctx, actorID, email); err != nil {
		return err
	}

	if err := srv.userRepo.DeleteByEmail(ctx, email); err != nil {
		return translate(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("user_id", actorID))

	return nil
}

// ListPaymentMethods returns the stored payment methods of a user.
func (srv *userService) ListPaymentMethods(ctx context.Context, actorID, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	if err := ensureOwner(actorID, userID, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	methods, err := srv.paymentMethodRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

// AddPaymentMethod stores a payment method reference. Only the last four
// digits of the card are accepted.
func (srv *userService) AddPaymentMethod(ctx context.Context, actorID, userID uuid.UUID, input *usecase.AddPaymentMethodInput) (*entity.PaymentMethod, error) {
	if err := ensureOwner(actorID, userID, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	provider := strings.TrimSpace(input.Provider)
	if provider == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider is required")
	}
	if !isLast4(input.Last4) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("last4 must be exactly four digits")
	}

	method := &entity.PaymentMethod{
		UserID:   userID,
		Provider: provider,
		Last4:    input.Last4,
	}
	if err := srv.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, errors.Wrap(err, "failed to create payment method")
	}

	srv.log(ctx).Info("Payment method added", slog.Any("user_id", userID), slog.Any("payment_method_id", method.ID))

	return method, nil
}

func (srv *userService) ownedUser(ctx context.Context, actorID uuid.UUID, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	if err := ensureOwner(actorID, user.ID, domainerrors.ErrForbidden); err != nil {
		srv.log(ctx).Warn("Rejected access to another user's account", slog.Any("actor_id", actorID), slog.Any("user_id", user.ID))

		return nil, err
	}

	return user, nil
}

func isLast4(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
