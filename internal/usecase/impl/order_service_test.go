package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service           usecase.OrderUsecase
	txManager         *mockRepo.MockTransactionManager
	cartRepo          *mockRepo.MockCartRepository
	orderRepo         *mockRepo.MockOrderRepository
	paymentMethodRepo *mockRepo.MockPaymentMethodRepository
	catalog           *mockSvc.MockProductCatalog
	gateway           *mockSvc.MockPaymentGateway
	publisher         *mockSvc.MockEventPublisher
	qrCodeService     *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	f := orderServiceFixtures{
		txManager:         mockRepo.NewMockTransactionManager(t),
		cartRepo:          mockRepo.NewMockCartRepository(t),
		orderRepo:         mockRepo.NewMockOrderRepository(t),
		paymentMethodRepo: mockRepo.NewMockPaymentMethodRepository(t),
		catalog:           mockSvc.NewMockProductCatalog(t),
		gateway:           mockSvc.NewMockPaymentGateway(t),
		publisher:         mockSvc.NewMockEventPublisher(t),
		qrCodeService:     mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewOrderService(OrderServiceParams{
		TxManager:         f.txManager,
		CartRepo:          f.cartRepo,
		OrderRepo:         f.orderRepo,
		PaymentMethodRepo: f.paymentMethodRepo,
		Catalog:           f.catalog,
		Gateway:           f.gateway,
		Publisher:         f.publisher,
		QRCodeService:     f.qrCodeService,
		Logger:            newDiscardLogger(),
	})

	return f
}

// checkoutScenario is a user with a two-line cart and a stored payment method.
type checkoutScenario struct {
	userID          uuid.UUID
	cartID          uuid.UUID
	paymentMethodID uuid.UUID
	items           []*entity.CartItem
}

func newCheckoutScenario() checkoutScenario {
	cartID := uuid.New()

	return checkoutScenario{
		userID:          uuid.New(),
		cartID:          cartID,
		paymentMethodID: uuid.New(),
		items: []*entity.CartItem{
			{CartID: cartID, ProductID: 1, Quantity: 2},
			{CartID: cartID, ProductID: 2, Quantity: 3},
		},
	}
}

func (s checkoutScenario) input() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{CartID: s.cartID, UserID: s.userID, PaymentMethodID: s.paymentMethodID}
}

// expectPricing sets up everything Checkout does before the transaction.
func (s checkoutScenario) expectPricing(ctx context.Context, f orderServiceFixtures) {
	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	f.cartRepo.EXPECT().ListItems(ctx, s.cartID).Return(s.items, nil)
	f.paymentMethodRepo.EXPECT().FindByID(ctx, s.paymentMethodID).Return(&entity.PaymentMethod{ID: s.paymentMethodID, UserID: s.userID}, nil)
	f.catalog.EXPECT().GetProduct(ctx, int64(1)).Return(&entity.Product{ID: 1, Price: decimal.RequireFromString("10.50")}, nil)
	f.catalog.EXPECT().GetProduct(ctx, int64(2)).Return(&entity.Product{ID: 2, Price: decimal.RequireFromString("0.10")}, nil)
	f.gateway.EXPECT().
		Authorize(ctx, mock.MatchedBy(func(req *entity.PaymentRequest) bool {
			return req.Amount.Equal(decimal.RequireFromString("21.30")) && req.PaymentMethodID == s.paymentMethodID
		})).
		Return(&entity.PaymentAuthorization{Approved: true, TransactionID: "sim_1"}, nil)
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()
	s.expectPricing(ctx, f)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, f.txManager, factory)

	orderID := uuid.New()
	txCartRepo.EXPECT().LockByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	txCartRepo.EXPECT().ListItems(ctx, s.cartID).Return([]*entity.CartItem{
		{CartID: s.cartID, ProductID: 2, Quantity: 3},
		{CartID: s.cartID, ProductID: 1, Quantity: 2},
	}, nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = orderID }).
		Return(nil)
	txOrderRepo.EXPECT().
		CreateItems(ctx, orderID, mock.MatchedBy(func(items []*entity.OrderItem) bool {
			return len(items) == 2 &&
				items[0].Subtotal.Equal(decimal.RequireFromString("21.00")) &&
				items[1].Subtotal.Equal(decimal.RequireFromString("0.30"))
		})).
		Return(nil)
	txCartRepo.EXPECT().ClearItems(ctx, s.cartID).Return(nil)
	txCartRepo.EXPECT().Delete(ctx, s.cartID).Return(nil)
	f.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
			return e.OrderID == orderID.String() && e.TotalAmount == "21.30" && len(e.Items) == 2
		})).
		Return(nil)

	order, err := f.service.Checkout(ctx, s.input())

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, s.userID, order.UserID)
	assert.True(t, decimal.RequireFromString("21.30").Equal(order.TotalAmount))
	assert.Len(t, order.Items, 2)
}

func TestOrderService_Checkout_MissingCartOpensNoTransaction(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()

	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(nil, repository.ErrCartNotFound)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	f.gateway.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_ForeignCart(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()

	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: uuid.New()}, nil)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrCartOwnershipViolation)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()

	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	f.cartRepo.EXPECT().ListItems(ctx, s.cartID).Return([]*entity.CartItem{}, nil)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestOrderService_Checkout_ForeignPaymentMethod(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()

	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	f.cartRepo.EXPECT().ListItems(ctx, s.cartID).Return(s.items, nil)
	f.paymentMethodRepo.EXPECT().FindByID(ctx, s.paymentMethodID).Return(&entity.PaymentMethod{ID: s.paymentMethodID, UserID: uuid.New()}, nil)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodNotFound)
}

func TestOrderService_Checkout_PaymentDeclined(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()

	f.cartRepo.EXPECT().FindByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	f.cartRepo.EXPECT().ListItems(ctx, s.cartID).Return(s.items, nil)
	f.paymentMethodRepo.EXPECT().FindByID(ctx, s.paymentMethodID).Return(&entity.PaymentMethod{ID: s.paymentMethodID, UserID: s.userID}, nil)
	f.catalog.EXPECT().GetProduct(ctx, mock.AnythingOfType("int64")).Return(&entity.Product{Price: decimal.NewFromInt(1)}, nil)
	f.gateway.EXPECT().Authorize(ctx, mock.Anything).Return(&entity.PaymentAuthorization{Approved: false}, nil)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrPaymentDeclined)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindPaymentRequired))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_CartChangedRollsBack(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()
	s.expectPricing(ctx, f)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(t, f.txManager, factory)

	txCartRepo.EXPECT().LockByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	txCartRepo.EXPECT().ListItems(ctx, s.cartID).Return([]*entity.CartItem{
		{CartID: s.cartID, ProductID: 1, Quantity: 5},
		{CartID: s.cartID, ProductID: 2, Quantity: 3},
	}, nil)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrCartChanged)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
	f.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_ConcurrentLoserSeesNotFound(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()
	s.expectPricing(ctx, f)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	expectTransaction(t, f.txManager, factory)

	txCartRepo.EXPECT().LockByID(ctx, s.cartID).Return(nil, repository.ErrCartNotFound)

	_, err := f.service.Checkout(ctx, s.input())

	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestOrderService_Checkout_InsertFailureIsInternal(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()
	s.expectPricing(ctx, f)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, f.txManager, factory)

	txCartRepo.EXPECT().LockByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	txCartRepo.EXPECT().ListItems(ctx, s.cartID).Return(s.items, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create order"))

	_, err := f.service.Checkout(ctx, s.input())

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	txCartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_PublishFailureKeepsOrder(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	s := newCheckoutScenario()
	s.expectPricing(ctx, f)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, f.txManager, factory)

	txCartRepo.EXPECT().LockByID(ctx, s.cartID).Return(&entity.Cart{ID: s.cartID, UserID: s.userID}, nil)
	txCartRepo.EXPECT().ListItems(ctx, s.cartID).Return(s.items, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().CreateItems(ctx, mock.Anything, mock.Anything).Return(nil)
	txCartRepo.EXPECT().ClearItems(ctx, s.cartID).Return(nil)
	txCartRepo.EXPECT().Delete(ctx, s.cartID).Return(nil)
	f.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := f.service.Checkout(ctx, s.input())

	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	paymentMethodID := uuid.New()

	f.paymentMethodRepo.EXPECT().FindByID(ctx, paymentMethodID).Return(&entity.PaymentMethod{ID: paymentMethodID, UserID: userID}, nil)
	f.catalog.EXPECT().GetProduct(ctx, int64(7)).Return(&entity.Product{ID: 7, Price: decimal.RequireFromString("3.25")}, nil)
	f.gateway.EXPECT().Authorize(ctx, mock.Anything).Return(&entity.PaymentAuthorization{Approved: true}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	expectTransaction(t, f.txManager, factory)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().CreateItems(ctx, mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	order, err := f.service.CreateOrder(ctx, &usecase.CreateOrderInput{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		Items:           []entity.LineRequest{{ProductID: 7, Quantity: 4}},
	})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("13.00").Equal(order.TotalAmount))
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()

	for _, items := range [][]entity.LineRequest{
		nil,
		{{ProductID: 1, Quantity: 0}},
		{{ProductID: 0, Quantity: 1}},
	} {
		_, err := f.service.CreateOrder(ctx, &usecase.CreateOrderInput{UserID: uuid.New(), PaymentMethodID: uuid.New(), Items: items})
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation), "items %+v", items)
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("not found", func(t *testing.T) {
		f := createTestOrderService(t)
		ctx := context.Background()

		f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

		_, err := f.service.GetOrder(ctx, userID, orderID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("foreign order", func(t *testing.T) {
		f := createTestOrderService(t)
		ctx := context.Background()

		f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

		_, err := f.service.GetOrder(ctx, userID, orderID)

		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("with items", func(t *testing.T) {
		f := createTestOrderService(t)
		ctx := context.Background()

		f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: userID}, nil)
		f.orderRepo.EXPECT().ListItems(ctx, orderID).Return([]*entity.OrderItem{{OrderID: orderID, ProductID: 1}}, nil)

		order, err := f.service.GetOrder(ctx, userID, orderID)

		require.NoError(t, err)
		assert.Len(t, order.Items, 1)
	})
}

func TestOrderService_ListUserOrders(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.orderRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.Order{}, nil)

	orders, err := f.service.ListUserOrders(ctx, userID, userID)

	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = f.service.ListUserOrders(ctx, uuid.New(), userID)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))
}

func TestOrderService_ReceiptQR(t *testing.T) {
	f := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(&entity.Order{ID: orderID, UserID: userID}, nil)
	f.qrCodeService.EXPECT().GenerateOrderReceiptQR(orderID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.ReceiptQR(ctx, userID, orderID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
