package impl

import (
	"context"
	"log/slog"
	"time"

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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager         repository.TransactionManager
	cartRepo          repository.CartRepository
	orderRepo         repository.OrderRepository
	paymentMethodRepo repository.PaymentMethodRepository
	catalog           service.ProductCatalog
	gateway           service.PaymentGateway
	publisher         service.EventPublisher
	qrCodeService     service.QRCodeService
	logger            *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	CartRepo          repository.CartRepository
	OrderRepo         repository.OrderRepository
	PaymentMethodRepo repository.PaymentMethodRepository
	Catalog           service.ProductCatalog
	Gateway           service.PaymentGateway
	Publisher         service.EventPublisher
	QRCodeService     service.QRCodeService
	Logger            *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:         params.TxManager,
		cartRepo:          params.CartRepo,
		orderRepo:         params.OrderRepo,
		paymentMethodRepo: params.PaymentMethodRepo,
		catalog:           params.Catalog,
		gateway:           params.Gateway,
		publisher:         params.Publisher,
		qrCodeService:     params.QRCodeService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts a cart into an order. Prices come from the catalog at
// checkout time. The order insert and the cart removal commit together, under
// a row lock on the cart so a second checkout of the same cart finds it gone.
func (srv *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.log(ctx).Info("Starting checkout", slog.Any("cart_id", input.CartID), slog.Any("user_id", input.UserID))

	cart, err := srv.cartRepo.FindByID(ctx, input.CartID)
	if err != nil {
		return nil, translate(err, "failed to find cart for checkout")
	}
	if err := ensureOwner(input.UserID, cart.UserID, domainerrors.ErrCartOwnershipViolation); err != nil {
		return nil, err
	}

	snapshot, err := srv.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items for checkout")
	}
	if len(snapshot) == 0 {
		return nil, domainerrors.ErrCartEmpty.WrapMessage("nothing to check out")
	}

	lines := make([]entity.LineRequest, 0, len(snapshot))
	for _, item := range snapshot {
		lines = append(lines, entity.LineRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := srv.prepareOrder(ctx, input.UserID, input.PaymentMethodID, lines, "cart:"+cart.ID.String())
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		if _, err := cartRepo.LockByID(ctx, cart.ID); err != nil {
			return translate(err, "failed to lock cart")
		}

		current, err := cartRepo.ListItems(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to re-read cart items")
		}
		if !entity.SameLines(snapshot, current) {
			return domainerrors.ErrCartChanged.WrapMessage("cart items differ from priced snapshot")
		}

		if err := srv.persistOrder(ctx, repoFactory.OrderRepo(), order); err != nil {
			return err
		}

		if err := cartRepo.ClearItems(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}
		if err := cartRepo.Delete(ctx, cart.ID); err != nil {
			return translate(err, "failed to delete cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Checkout transaction failed", slog.Any("cart_id", cart.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("order_id", order.ID),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
	)
	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

// CreateOrder places an order from explicit lines without touching any cart.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}
	for _, line := range input.Items {
		if line.ProductID <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("product_id must be positive")
		}
		if err := validateQuantity(line.Quantity); err != nil {
			return nil, err
		}
	}

	order, err := srv.prepareOrder(ctx, input.UserID, input.PaymentMethodID, input.Items, "direct:"+input.UserID.String())
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.persistOrder(ctx, repoFactory.OrderRepo(), order)
	})
	if err != nil {
		srv.log(ctx).Error("Order transaction failed", slog.Any("user_id", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order transaction")
	}

	srv.log(ctx).Info("Order created", slog.Any("order_id", order.ID), slog.Any("user_id", order.UserID))
	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

// prepareOrder checks the payment method, prices every line from the catalog
// and authorizes the total. Nothing is written.
func (srv *orderService) prepareOrder(
	ctx context.Context,
	userID, paymentMethodID uuid.UUID,
	lines []entity.LineRequest,
	reference string,
) (*entity.Order, error) {
	if err := srv.checkPaymentMethod(ctx, userID, paymentMethodID); err != nil {
		return nil, err
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := srv.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to price product %d", line.ProductID)
		}
		items = append(items, entity.NewOrderItem(line.ProductID, line.Quantity, product.Price))
	}

	order := &entity.Order{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		TotalAmount:     entity.SumSubtotals(items),
		Items:           items,
	}

	auth, err := srv.gateway.Authorize(ctx, &entity.PaymentRequest{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
		Amount:          order.TotalAmount,
		Reference:       reference,
	})
	if err != nil {
		return nil, errors.Wrap(err, "payment authorization failed")
	}
	if auth == nil || !auth.Approved {
		srv.log(ctx).Warn("Payment declined", slog.Any("user_id", userID), slog.String("reference", reference))

		return nil, domainerrors.ErrPaymentDeclined.WrapMessage("payment gateway declined the charge")
	}

	srv.log(ctx).Debug("Payment authorized", slog.String("transaction_id", auth.TransactionID))

	return order, nil
}

func (srv *orderService) checkPaymentMethod(ctx context.Context, userID, paymentMethodID uuid.UUID) error {
	method, err := srv.paymentMethodRepo.FindByID(ctx, paymentMethodID)
	if err != nil {
		return translate(err, "failed to find payment method")
	}
	if method.UserID != userID {
		return domainerrors.ErrPaymentMethodNotFound.WrapMessage("payment method belongs to another user")
	}

	return nil
}

func (srv *orderService) persistOrder(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order) error {
	if err := orderRepo.Create(ctx, order); err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	if err := orderRepo.CreateItems(ctx, order.ID, order.Items); err != nil {
		return errors.Wrap(err, "failed to create order items")
	}

	return nil
}

// publishOrderPlaced emits the order event once the order is committed.
// A failed publish is logged and never undoes the order.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		OrderDate:   order.OrderDate.UTC().Format(time.RFC3339),
		Items:       make([]service.OrderEventItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, service.OrderEventItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("order_id", order.ID), slog.Any("error", err))
	}
}

// GetOrder returns the order with its items.
func (srv *orderService) GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.ownedOrder(ctx, actorID, orderID)
	if err != nil {
		return nil, err
	}

	items, err := srv.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}
	order.Items = items

	return order, nil
}

// GetOrderItems returns the lines of an order.
func (srv *orderService) GetOrderItems(ctx context.Context, actorID, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	if _, err := srv.ownedOrder(ctx, actorID, orderID); err != nil {
		return nil, err
	}

	items, err := srv.orderRepo.ListItems(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	return items, nil
}

// ListUserOrders returns a user's orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, actorID, userID uuid.UUID) ([]*entity.Order, error) {
	if err := ensureOwner(actorID, userID, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ReceiptQR renders the order receipt QR code as PNG.
func (srv *orderService) ReceiptQR(ctx context.Context, actorID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.ownedOrder(ctx, actorID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateOrderReceiptQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt qr code")
	}

	return png, nil
}

func (srv *orderService) ownedOrder(ctx context.Context, actorID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err, "failed to find order")
	}

	if err := ensureOwner(actorID, order.UserID, domainerrors.ErrOrderOwnershipViolation); err != nil {
		srv.log(ctx).Warn("Rejected access to another user's order", slog.Any("actor_id", actorID), slog.Any("order_id", orderID))

		return nil, err
	}

	return order, nil
}
