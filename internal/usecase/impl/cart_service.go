package impl

import (
	"context"
	"fmt"
	"log/slog"

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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	userRepo repository.UserRepository
	catalog  service.ProductCatalog
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	UserRepo repository.UserRepository
	Catalog  service.ProductCatalog
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		userRepo: params.UserRepo,
		catalog:  params.Catalog,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCart opens the user's single cart.
func (srv *cartService) CreateCart(ctx context.Context, actorID, userID uuid.UUID) (*entity.Cart, error) {
	if err := ensureOwner(actorID, userID, domainerrors.ErrForbidden); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, translate(err, "failed to find cart owner")
	}

	_, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return nil, domainerrors.ErrCartAlreadyExists.WrapMessage("user already has a cart")
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to check existing cart")
	}

	cart := &entity.Cart{UserID: userID}
	// The unique index on user_id still rejects a cart created concurrently.
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Info("Cart created", slog.Any("cart_id", cart.ID), slog.Any("user_id", userID))

	return cart, nil
}

// GetCartByUser returns the user's cart.
func (srv *cartService) GetCartByUser(ctx context.Context, actorID, userID uuid.UUID) (*entity.Cart, error) {
	if err := ensureOwner(actorID, userID, domainerrors.ErrCartOwnershipViolation); err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find cart")
	}

	return cart, nil
}

// DeleteCartByUser removes the user's cart and its items.
func (srv *cartService) DeleteCartByUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if err := ensureOwner(actorID, userID, domainerrors.ErrCartOwnershipViolation); err != nil {
		return err
	}

	if err := srv.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return translate(err, "failed to delete cart")
	}

	srv.log(ctx).Info("Cart deleted", slog.Any("user_id", userID))

	return nil
}

// AddItem puts a catalog product in the cart, summing with an existing line.
func (srv *cartService) AddItem(ctx context.Context, actorID, cartID uuid.UUID, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	if _, err := srv.ownedCart(ctx, actorID, cartID); err != nil {
		return nil, err
	}

	if _, err := srv.catalog.GetProduct(ctx, input.ProductID); err != nil {
		return nil, errors.Wrapf(err, "failed to look up product %d", input.ProductID)
	}

	total, err := srv.cartRepo.AddItem(ctx, cartID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, translate(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Any("cart_id", cartID),
		slog.Int64("product_id", input.ProductID),
		slog.Int("quantity", total),
	)

	return &entity.CartItem{CartID: cartID, ProductID: input.ProductID, Quantity: total}, nil
}

// ListItems returns the cart lines with current catalog data. A product that
// has left the catalog is listed without details.
func (srv *cartService) ListItems(ctx context.Context, actorID, cartID uuid.UUID) ([]*entity.CartLine, error) {
	if _, err := srv.ownedCart(ctx, actorID, cartID); err != nil {
		return nil, err
	}

	items, err := srv.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	lines := make([]*entity.CartLine, 0, len(items))
	for _, item := range items {
		product, err := srv.catalog.GetProduct(ctx, item.ProductID)
		if err != nil && !domainerrors.IsKind(err, domainerrors.KindNotFound) {
			return nil, errors.Wrapf(err, "failed to look up product %d", item.ProductID)
		}
		if err != nil {
			srv.log(ctx).Warn("Cart references a product missing from the catalog", slog.Int64("product_id", item.ProductID))
		}

		lines = append(lines, &entity.CartLine{CartItem: *item, Product: product})
	}

	return lines, nil
}

// UpdateItemQuantity replaces the quantity of an existing line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, actorID, cartID uuid.UUID, productID int64, quantity int) (*entity.CartItem, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	if _, err := srv.ownedCart(ctx, actorID, cartID); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateItemQuantity(ctx, cartID, productID, quantity); err != nil {
		return nil, translate(err, "failed to update cart item")
	}

	return &entity.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}, nil
}

// RemoveItem drops a line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, actorID, cartID uuid.UUID, productID int64) error {
	if _, err := srv.ownedCart(ctx, actorID, cartID); err != nil {
		return err
	}

	if err := srv.cartRepo.RemoveItem(ctx, cartID, productID); err != nil {
		return translate(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) ownedCart(ctx context.Context, actorID, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		return nil, translate(err, "failed to find cart")
	}

	if err := ensureOwner(actorID, cart.UserID, domainerrors.ErrCartOwnershipViolation); err != nil {
		srv.log(ctx).Warn("Rejected access to another user's cart", slog.Any("actor_id", actorID), slog.Any("cart_id", cartID))

		return nil, err
	}

	return cart, nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	if quantity > entity.MaxLineQuantity {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity must be at most %d", entity.MaxLineQuantity))
	}

	return nil
}
