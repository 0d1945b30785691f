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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartRepository
	userRepo *mockRepo.MockUserRepository
	catalog  *mockSvc.MockProductCatalog
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	catalog := mockSvc.NewMockProductCatalog(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			CartRepo: cartRepo,
			UserRepo: userRepo,
			Catalog:  catalog,
			Logger:   newDiscardLogger(),
		}),
		cartRepo: cartRepo,
		userRepo: userRepo,
		catalog:  catalog,
	}
}

func TestCartService_CreateCart_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, cart *entity.Cart) { cart.ID = uuid.New() }).
		Return(nil)

	cart, err := fx.service.CreateCart(ctx, userID, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.NotEqual(t, uuid.Nil, cart.ID)
}

func TestCartService_CreateCart_Duplicate(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil)

	_, err := fx.service.CreateCart(ctx, userID, userID)

	assert.ErrorIs(t, err, domainerrors.ErrCartAlreadyExists)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
}

func TestCartService_CreateCart_RacedInsertIsConflict(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrCartAlreadyExists.WrapMessage("unique violation"))

	_, err := fx.service.CreateCart(ctx, userID, userID)

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
}

func TestCartService_CreateCart_UnknownUser(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CreateCart(ctx, userID, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestCartService_CreateCart_ForAnotherUser(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.CreateCart(context.Background(), uuid.New(), uuid.New())

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))
}

func TestCartService_DeleteCartByUser_NotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByUserID(ctx, userID).Return(repository.ErrCartNotFound)

	err := fx.service.DeleteCartByUser(ctx, userID, userID)

	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestCartService_AddItem_SumsQuantities(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.catalog.EXPECT().GetProduct(ctx, int64(5)).Return(&entity.Product{ID: 5}, nil)
	fx.cartRepo.EXPECT().AddItem(ctx, cartID, int64(5), 2).Return(5, nil)

	item, err := fx.service.AddItem(ctx, userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	userID := uuid.New()
	cartID := uuid.New()

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(context.Background(), userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: 0})

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	})

	t.Run("quantity above line limit", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(context.Background(), userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: 5_000_000_000})

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	})

	t.Run("merged quantity over limit", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
		fx.catalog.EXPECT().GetProduct(ctx, int64(5)).Return(&entity.Product{ID: 5}, nil)
		fx.cartRepo.EXPECT().AddItem(ctx, cartID, int64(5), entity.MaxLineQuantity).
			Return(0, domainerrors.ErrValidationFailed.WithDetails("quantity must be between 1 and 10000"))

		_, err := fx.service.AddItem(ctx, userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: entity.MaxLineQuantity})

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	})

	t.Run("missing cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(nil, repository.ErrCartNotFound)

		_, err := fx.service.AddItem(ctx, userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	})

	t.Run("foreign cart", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: uuid.New()}, nil)

		_, err := fx.service.AddItem(ctx, userID, cartID, &usecase.AddCartItemInput{ProductID: 5, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrCartOwnershipViolation)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
		fx.catalog.EXPECT().GetProduct(ctx, int64(404)).Return(nil, domainerrors.ErrProductNotFound)

		_, err := fx.service.AddItem(ctx, userID, cartID, &usecase.AddCartItemInput{ProductID: 404, Quantity: 1})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestCartService_ListItems_EnrichesFromCatalog(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().ListItems(ctx, cartID).Return([]*entity.CartItem{
		{CartID: cartID, ProductID: 1, Quantity: 2},
		{CartID: cartID, ProductID: 2, Quantity: 1},
	}, nil)
	fx.catalog.EXPECT().GetProduct(ctx, int64(1)).Return(&entity.Product{ID: 1, Name: "Lamp", Price: decimal.RequireFromString("9.99")}, nil)
	fx.catalog.EXPECT().GetProduct(ctx, int64(2)).Return(nil, domainerrors.ErrProductNotFound)

	lines, err := fx.service.ListItems(ctx, userID, cartID)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Lamp", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Nil(t, lines[1].Product)
}

func TestCartService_UpdateItemQuantity_MissingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().UpdateItemQuantity(ctx, cartID, int64(3), 4).Return(repository.ErrCartItemNotFound)

	_, err := fx.service.UpdateItemQuantity(ctx, userID, cartID, 3, 4)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateItemQuantity_AboveLimit(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.UpdateItemQuantity(context.Background(), uuid.New(), uuid.New(), 3, entity.MaxLineQuantity+1)

	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().FindByID(ctx, cartID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	fx.cartRepo.EXPECT().RemoveItem(ctx, cartID, int64(3)).Return(nil)

	assert.NoError(t, fx.service.RemoveItem(ctx, userID, cartID, 3))
}
