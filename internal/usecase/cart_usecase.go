package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput names a product and how many to add.
type AddCartItemInput struct {
	ProductID int64
	Quantity  int
}

// CartUsecase manages a user's cart. Every operation requires actorID to own the cart.
type CartUsecase interface {
	CreateCart(ctx context.Context, actorID, userID uuid.UUID) (*entity.Cart, error)
	GetCartByUser(ctx context.Context, actorID, userID uuid.UUID) (*entity.Cart, error)
	DeleteCartByUser(ctx context.Context, actorID, userID uuid.UUID) error

	// AddItem adds to the line's quantity when the product is already in the cart.
	AddItem(ctx context.Context, actorID, cartID uuid.UUID, input *AddCartItemInput) (*entity.CartItem, error)

	// ListItems returns the lines enriched with current catalog data.
	ListItems(ctx context.Context, actorID, cartID uuid.UUID) ([]*entity.CartLine, error)

	UpdateItemQuantity(ctx context.Context, actorID, cartID uuid.UUID, productID int64, quantity int) (*entity.CartItem, error)
	RemoveItem(ctx context.Context, actorID, cartID uuid.UUID, productID int64) error
}
