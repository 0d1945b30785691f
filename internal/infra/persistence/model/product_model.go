package model

import "github.com/shopspring/decimal"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text;not null"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity int             `gorm:"not null"`
	ImageURL      string          `gorm:"column:image_url;type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
