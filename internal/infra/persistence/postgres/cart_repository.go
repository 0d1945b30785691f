package postgres

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// addItemSQL inserts a line or adds to the existing quantity in one statement,
// so concurrent adds of the same product never lose an increment.
const addItemSQL = `INSERT INTO cart_items (cart_id, product_id, quantity) VALUES (?, ?, ?)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING quantity`

// cartRepository implements repository.CartRepository using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Create inserts a new cart. The unique user_id index backs the one-cart rule.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCartAlreadyExists.WrapMessage("cart already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("cart owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}
	cart.CreatedAt = cartM.CreatedAt

	return nil
}

// FindByID retrieves a cart by ID from the primary. Items are added right
// after a cart is created, so a lagging replica would report it missing.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write), "id = ?", id)
}

// FindByUserID retrieves the cart owned by a user.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.findOne(repo.db.WithContext(ctx), "user_id = ?", userID)
}

// LockByID reads the cart from the primary and holds a row lock until the
// surrounding transaction ends.
func (repo *cartRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})

	return repo.findOne(db, "id = ?", id)
}

func (repo *cartRepository) findOne(db *gorm.DB, query string, arg any) (*entity.Cart, error) {
	var cartM model.CartModel
	if err := db.Where(query, arg).Take(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Delete removes a cart; cart_items cascade.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.deleteWhere(ctx, "id = ?", id)
}

// DeleteByUserID removes the cart owned by a user.
func (repo *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return repo.deleteWhere(ctx, "user_id = ?", userID)
}

func (repo *cartRepository) deleteWhere(ctx context.Context, query string, arg any) error {
	result := repo.db.WithContext(ctx).Where(query, arg).Delete(&model.CartModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// AddItem upserts a cart line and returns the resulting quantity.
func (repo *cartRepository) AddItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (int, error) {
	var total int
	if err := repo.db.WithContext(ctx).Raw(addItemSQL, cartID, productID, quantity).Scan(&total).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return 0, repository.ErrCartNotFound
		}
		if isCheckConstraintViolation(err) || isOutOfRange(err) {
			return 0, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity must be between 1 and %d", entity.MaxLineQuantity))
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	return total, nil
}

// ListItems returns a cart's lines ordered by product. It reads the primary so
// a checkout snapshot agrees with the locked re-read in the transaction.
func (repo *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("cart_id = ?", cartID).
		Order("product_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// UpdateItemQuantity sets the quantity of an existing line.
func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isOutOfRange(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity must be between 1 and %d", entity.MaxLineQuantity))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes a single line.
func (repo *cartRepository) RemoveItem(ctx context.Context, cartID uuid.UUID, productID int64) error {
	result := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems deletes every line of a cart.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart items")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
	}
}
