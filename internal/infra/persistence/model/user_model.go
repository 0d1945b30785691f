// Package model holds the GORM persistence models. They mirror the tables in
// schema.sql and never leave the infra layer. Column defaults live in the
// schema; IDs are generated by the repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Address      string    `gorm:"type:text;not null"`
	GoogleID     *string   `gorm:"column:google_id;type:varchar(255);unique"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider  string    `gorm:"type:varchar(50);not null"`
	UserAgent string    `gorm:"type:varchar(512);not null"`
	IP        string    `gorm:"column:ip;type:varchar(64);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// PaymentMethodModel mirrors the 'payment_methods' table.
type PaymentMethodModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider  string    `gorm:"type:varchar(50);not null"`
	Last4     string    `gorm:"column:last4;type:varchar(4);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
