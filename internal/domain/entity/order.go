package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an immutable record of a completed purchase.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	OrderDate       time.Time
	TotalAmount     decimal.Decimal
	Items           []*OrderItem
}

// OrderItem freezes the unit price paid at order time.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// LineRequest asks for a quantity of a product; the price is resolved server-side.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// MoneyScale is the number of decimal places money columns store.
const MoneyScale = 2

// NewOrderItem prices a line at the given unit price, rounded to cents first so
// the stored unit price times quantity equals the stored subtotal.
func NewOrderItem(productID int64, quantity int, unitPrice decimal.Decimal) *OrderItem {
	unitPrice = unitPrice.Round(MoneyScale)

	return &OrderItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// SumSubtotals returns the order total for the given items.
func SumSubtotals(items []*OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	return total
}
