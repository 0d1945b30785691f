package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is a stored reference to how a user pays. Only the last four
// digits of a card are ever kept.
type PaymentMethod struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Provider  string
	Last4     string
	CreatedAt time.Time
}

// PaymentRequest is what the gateway is asked to authorize.
type PaymentRequest struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          decimal.Decimal
	Reference       string
}

// PaymentAuthorization is the gateway's answer.
type PaymentAuthorization struct {
	Approved      bool
	TransactionID string
}
