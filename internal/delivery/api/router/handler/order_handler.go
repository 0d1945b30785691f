package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves direct order creation and order reads.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest asks for a product quantity; prices come from the catalog.
type OrderLineRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1,lte=10000"`
}

// CreateOrderRequest places an order without a cart
type CreateOrderRequest struct {
	PaymentMethodID uuid.UUID          `json:"payment_method_id" validate:"required"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	lines := make([]entity.LineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, entity.LineRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		UserID:          identity.UserID,
		PaymentMethodID: req.PaymentMethodID,
		Items:           lines,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// GetOrder handles GET /orders/:order_id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), identity.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// GetOrderItems handles GET /orders/:order_id/items
func (h *OrderHandler) GetOrderItems(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	items, err := h.orderUC.GetOrderItems(c.Request().Context(), identity.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderItemResponses(items))
}

// ListUserOrders handles GET /orders/user/:user_id
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
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

// Receipt handles GET /orders/:order_id/receipt and returns a PNG QR code
func (h *OrderHandler) Receipt(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, ok := uuidParam(c, "order_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.ReceiptQR(c.Request().Context(), identity.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, constants.ContentTypePNG, png)
}
