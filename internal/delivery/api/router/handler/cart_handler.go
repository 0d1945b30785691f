package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC  usecase.CartUsecase
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// CartHandler serves cart mutation and checkout.
type CartHandler struct {
	cartUC  usecase.CartUsecase
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC:  params.CartUC,
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateCartRequest names the cart owner; it defaults to the session user.
type CreateCartRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

// AddCartItemRequest adds a quantity of a product to a cart
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1,lte=10000"`
}

// UpdateCartItemRequest sets a line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1,lte=10000"`
}

// CheckoutRequest selects the payment method for a checkout
type CheckoutRequest struct {
	PaymentMethodID uuid.UUID `json:"payment_method_id" validate:"required"`
}

// CreateCart handles POST /cart
func (h *CartHandler) CreateCart(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	userID := identity.UserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	cart, err := h.cartUC.CreateCart(c.Request().Context(), identity.UserID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCartResponse(cart))
}

// GetCartByUser handles GET /cart/:user_id
func (h *CartHandler) GetCartByUser(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	cart, err := h.cartUC.GetCartByUser(c.Request().Context(), identity.UserID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart))
}

// DeleteCartByUser handles DELETE /cart/:user_id
func (h *CartHandler) DeleteCartByUser(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.cartUC.DeleteCartByUser(c.Request().Context(), identity.UserID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart deleted successfully"})
}

// AddItem handles POST /cart/:cart_id/items
func (h *CartHandler) AddItem(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), identity.UserID, cartID, &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCartItemResponse(item))
}

// ListItems handles GET /cart/:cart_id/items
func (h *CartHandler) ListItems(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	lines, err := h.cartUC.ListItems(c.Request().Context(), identity.UserID, cartID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartLineResponses(lines))
}

// UpdateItem handles PUT /cart/:cart_id/items/:product_id
func (h *CartHandler) UpdateItem(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	productID, ok := productIDParam(c, "product_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	item, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), identity.UserID, cartID, productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartItemResponse(item))
}

// RemoveItem handles DELETE /cart/:cart_id/items/:product_id
func (h *CartHandler) RemoveItem(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	productID, ok := productIDParam(c, "product_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), identity.UserID, cartID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

// Checkout handles POST /cart/:cart_id/checkout
func (h *CartHandler) Checkout(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cartID, ok := uuidParam(c, "cart_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart ID")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		CartID:          cartID,
		UserID:          identity.UserID,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}
