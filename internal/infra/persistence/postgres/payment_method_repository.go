package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

// Create stores a payment method for a user.
func (repo *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	methodM := fromPaymentMethodDomain(method)

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("payment method owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment method")
	}
	method.CreatedAt = methodM.CreatedAt

	return nil
}

// FindByID retrieves a payment method.
func (repo *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&methodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment method")
	}

	return toPaymentMethodDomain(&methodM), nil
}

// ListByUserID returns a user's payment methods, newest first.
func (repo *paymentMethodRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var methodModels []*model.PaymentMethodModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&methodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	methods := make([]*entity.PaymentMethod, 0, len(methodModels))
	for _, methodM := range methodModels {
		methods = append(methods, toPaymentMethodDomain(methodM))
	}

	return methods, nil
}

// --- Mapper Functions ---

func toPaymentMethodDomain(data *model.PaymentMethodModel) *entity.PaymentMethod {
	if data == nil {
		return nil
	}

	return &entity.PaymentMethod{
		ID:        data.ID,
		UserID:    data.UserID,
		Provider:  data.Provider,
		Last4:     data.Last4,
		CreatedAt: data.CreatedAt,
	}
}

func fromPaymentMethodDomain(data *entity.PaymentMethod) *model.PaymentMethodModel {
	if data == nil {
		return nil
	}

	return &model.PaymentMethodModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Provider:  data.Provider,
		Last4:     data.Last4,
		CreatedAt: data.CreatedAt,
	}
}
