package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. user_id is unique: one cart per user.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;unique"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table, keyed by (cart_id, product_id).
type CartItemModel struct {
	CartID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID int64     `gorm:"primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
