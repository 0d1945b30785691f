package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order header.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == "orders_user_id_fkey" {
				return domainerrors.ErrUserNotFound.WrapMessage("order owner does not exist")
			}

			return domainerrors.ErrPaymentMethodNotFound.WrapMessage("invalid payment method reference")
		}
		if isOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order total exceeds the supported amount")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// CreateItems inserts every line of an order in one statement.
func (repo *orderRepository) CreateItems(ctx context.Context, orderID uuid.UUID, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = orderID
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order line exceeds the supported amount")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	return nil
}

// FindByID retrieves an order header.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListItems returns the lines of an order from the primary, like FindByID.
func (repo *orderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("order_id = ?", orderID).
		Order("product_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// ListByUserID returns a user's orders, newest first.
func (repo *orderRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		PaymentMethodID: data.PaymentMethodID,
		OrderDate:       data.OrderDate,
		TotalAmount:     data.TotalAmount,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		PaymentMethodID: data.PaymentMethodID,
		OrderDate:       data.OrderDate,
		TotalAmount:     data.TotalAmount,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Subtotal:  data.Subtotal,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.UnitPrice,
		Subtotal:  data.Subtotal,
	}
}
