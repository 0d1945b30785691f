package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service           usecase.UserUsecase
	userRepo          *mockRepo.MockUserRepository
	paymentMethodRepo *mockRepo.MockPaymentMethodRepository
	hasher            *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	paymentMethodRepo := mockRepo.NewMockPaymentMethodRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo:          userRepo,
		PaymentMethodRepo: paymentMethodRepo,
		Hasher:            hasher,
		Logger:            newDiscardLogger(),
	})

	return userServiceFixtures{
		service:           service,
		userRepo:          userRepo,
		paymentMethodRepo: paymentMethodRepo,
		hasher:            hasher,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password123!",
		Address:  "1 Main St",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, "1 Main St", user.Address)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "short"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(domainerrors.ErrPasswordStrength.WithDetails("too short"))

	_, err := fx.service.Register(ctx, input)

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestUserService_GetByEmail_Forbidden(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.GetByEmail(ctx, uuid.New(), "bob@example.com")

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetByEmail(ctx, uuid.New(), "ghost@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateByEmail_HashesPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	email := "alice@example.com"
	password := "NewPassword1!"
	hash := "new_hash"

	fx.userRepo.EXPECT().FindByEmail(ctx, email).Return(&entity.User{ID: userID, Email: email}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength(password).Return(nil)
	fx.hasher.EXPECT().Hash(password).Return(hash, nil)
	fx.userRepo.EXPECT().
		UpdateByEmail(ctx, email, mock.MatchedBy(func(changes entity.UserChanges) bool {
			return changes.PasswordHash != nil && *changes.PasswordHash == hash && changes.Username == nil
		})).
		Return(&entity.User{ID: userID, Email: email, PasswordHash: hash}, nil)

	user, err := fx.service.UpdateByEmail(ctx, userID, email, &usecase.UpdateUserInput{Password: &password})

	require.NoError(t, err)
	assert.Equal(t, hash, user.PasswordHash)
}

func TestUserService_UpdateByEmail_OmittedPasswordKeepsHash(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	email := "alice@example.com"
	address := "2 Side St"

	fx.userRepo.EXPECT().FindByEmail(ctx, email).Return(&entity.User{ID: userID, Email: email}, nil)
	fx.userRepo.EXPECT().
		UpdateByEmail(ctx, email, entity.UserChanges{Address: &address}).
		Return(&entity.User{ID: userID, Email: email, PasswordHash: "old_hash", Address: address}, nil)

	user, err := fx.service.UpdateByEmail(ctx, userID, email, &usecase.UpdateUserInput{Address: &address})

	require.NoError(t, err)
	assert.Equal(t, "old_hash", user.PasswordHash)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_DeleteByEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	email := "alice@example.com"

	fx.userRepo.EXPECT().FindByEmail(ctx, email).Return(&entity.User{ID: userID}, nil)
	fx.userRepo.EXPECT().DeleteByEmail(ctx, email).Return(nil)

	require.NoError(t, fx.service.DeleteByEmail(ctx, userID, email))
}

func TestUserService_DeleteByEmail_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteByEmail(ctx, uuid.New(), "ghost@example.com")

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestUserService_AddPaymentMethod(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.paymentMethodRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.PaymentMethod) bool {
			return m.UserID == userID && m.Provider == "visa" && m.Last4 == "4242"
		})).
		Return(nil)

	method, err := fx.service.AddPaymentMethod(ctx, userID, userID, &usecase.AddPaymentMethodInput{Provider: " visa ", Last4: "4242"})

	require.NoError(t, err)
	assert.Equal(t, "visa", method.Provider)
}

func TestUserService_AddPaymentMethod_Validation(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, input := range []*usecase.AddPaymentMethodInput{
		{Provider: "", Last4: "4242"},
		{Provider: "visa", Last4: "42"},
		{Provider: "visa", Last4: "42a2"},
	} {
		_, err := fx.service.AddPaymentMethod(ctx, userID, userID, input)
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation), "input %+v", input)
	}
}

func TestUserService_ListPaymentMethods(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := fx.service.ListPaymentMethods(ctx, uuid.New(), userID)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))

	fx.paymentMethodRepo.EXPECT().ListByUserID(ctx, userID).Return(nil, errors.New("db down"))

	_, err = fx.service.ListPaymentMethods(ctx, userID, userID)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindInternal))
}
