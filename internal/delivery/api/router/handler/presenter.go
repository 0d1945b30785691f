package handler

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string so clients never parse floats.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	GoogleLinked bool      `json:"google_linked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Address:      u.Address,
		GoogleLinked: u.GoogleID != nil,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type ProductResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
	ImageURL      string `json:"image_url"`
}

func newProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         money(p.Price),
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
	}
}

func newProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}

	return out
}

type CartResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func newCartResponse(c *entity.Cart) *CartResponse {
	return &CartResponse{ID: c.ID, UserID: c.UserID, CreatedAt: c.CreatedAt}
}

// CartItemResponse is a cart line. Product is null when the catalog no longer has it.
type CartItemResponse struct {
	CartID    uuid.UUID        `json:"cart_id"`
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

func newCartItemResponse(item *entity.CartItem) *CartItemResponse {
	return &CartItemResponse{CartID: item.CartID, ProductID: item.ProductID, Quantity: item.Quantity}
}

func newCartLineResponses(lines []*entity.CartLine) []*CartItemResponse {
	out := make([]*CartItemResponse, 0, len(lines))
	for _, line := range lines {
		resp := newCartItemResponse(&line.CartItem)
		resp.Product = newProductResponse(line.Product)
		out = append(out, resp)
	}

	return out
}

type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	PaymentMethodID uuid.UUID            `json:"payment_method_id"`
	OrderDate       time.Time            `json:"order_date"`
	TotalAmount     string               `json:"total_amount"`
	Items           []*OrderItemResponse `json:"items,omitempty"`
}

func newOrderItemResponses(items []*entity.OrderItem) []*OrderItemResponse {
	out := make([]*OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			Subtotal:  money(item.Subtotal),
		})
	}

	return out
}

func newOrderResponse(o *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		PaymentMethodID: o.PaymentMethodID,
		OrderDate:       o.OrderDate,
		TotalAmount:     money(o.TotalAmount),
	}
	if len(o.Items) > 0 {
		resp.Items = newOrderItemResponses(o.Items)
	}

	return resp
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}

	return out
}

type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	Provider  string    `json:"provider"`
	Last4     string    `json:"last4"`
	CreatedAt time.Time `json:"created_at"`
}

func newPaymentMethodResponse(m *entity.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{ID: m.ID, Provider: m.Provider, Last4: m.Last4, CreatedAt: m.CreatedAt}
}

func newPaymentMethodResponses(methods []*entity.PaymentMethod) []*PaymentMethodResponse {
	out := make([]*PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, newPaymentMethodResponse(m))
	}

	return out
}

type SessionResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
}

// LoginResponse echoes the session token for clients that cannot hold cookies.
type LoginResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Created   bool          `json:"created,omitempty"`
}
