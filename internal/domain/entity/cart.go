package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's in-progress selection. A user has at most one.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

// MaxLineQuantity caps the quantity of a single cart or order line, including
// the merged total after repeated adds.
const MaxLineQuantity = 10000

// CartItem is one product line in a cart, keyed by (CartID, ProductID).
type CartItem struct {
	CartID    uuid.UUID
	ProductID int64
	Quantity  int
}

// CartLine is a cart item enriched with current catalog data for display.
type CartLine struct {
	CartItem
	Product *Product
}

// SameLines reports whether two item sets have identical products and quantities.
func SameLines(a, b []*CartItem) bool {
	if len(a) != len(b) {
		return false
	}

	want := make(map[int64]int, len(a))
	for _, item := range a {
		want[item.ProductID] = item.Quantity
	}
	for _, item := range b {
		qty, ok := want[item.ProductID]
		if !ok || qty != item.Quantity {
			return false
		}
	}

	return true
}
