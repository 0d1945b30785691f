package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Cart persistence errors.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists carts and their items.
type CartRepository interface {
	// Create inserts a cart. A second cart for the same user yields ErrCartAlreadyExists.
	Create(ctx context.Context, cart *entity.Cart) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// LockByID reads the cart with SELECT ... FOR UPDATE. Only meaningful inside a transaction.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Delete removes the cart; its items cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// AddItem inserts the line or adds to its quantity atomically and returns the resulting quantity.
	AddItem(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (int, error)

	ListItems(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) error
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID int64) error
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
