package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	CartUC  usecase.CartUsecase
	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// UserHandler serves the user directory and a user's related records.
type UserHandler struct {
	userUC  usecase.UserUsecase
	cartUC  usecase.CartUsecase
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:  params.UserUC,
		cartUC:  params.CartUC,
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// RegisterUserRequest represents the request body for registration
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"max=255"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

// AddPaymentMethodRequest represents a stored payment method
type AddPaymentMethodRequest struct {
	Provider string `json:"provider" validate:"required,max=50"`
	Last4    string `json:"last4" validate:"required,len=4,numeric"`
}

// Register handles POST /users
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// GetByEmail handles GET /users/:email
func (h *UserHandler) GetByEmail(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetByEmail(c.Request().Context(), identity.UserID, c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateByEmail handles PUT /users/:email
func (h *UserHandler) UpdateByEmail(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	user, err := h.userUC.UpdateByEmail(c.Request().Context(), identity.UserID, c.Param("email"), &usecase.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteByEmail handles DELETE /users/:email
func (h *UserHandler) DeleteByEmail(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteByEmail(c.Request().Context(), identity.UserID, c.Param("email")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// GetCart handles GET /users/:user_id/cart
func (h *UserHandler) GetCart(c echo.Context) error {
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

// ListOrders handles GET /users/:user_id/orders
func (h *UserHandler) ListOrders(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), identity.UserID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

// ListPaymentMethods handles GET /users/:user_id/payment-methods
func (h *UserHandler) ListPaymentMethods(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	methods, err := h.userUC.ListPaymentMethods(c.Request().Context(), identity.UserID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentMethodResponses(methods))
}

// AddPaymentMethod handles POST /users/:user_id/payment-methods
func (h *UserHandler) AddPaymentMethod(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req AddPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	method, err := h.userUC.AddPaymentMethod(c.Request().Context(), identity.UserID, userID, &usecase.AddPaymentMethodInput{
		Provider: req.Provider,
		Last4:    req.Last4,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPaymentMethodResponse(method))
}
