package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry. IDs are integers so local and remote catalogs
// share one key space.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal
	StockQuantity int
	ImageURL      string
}

// ProductChanges carries a partial catalog update. Nil fields keep their stored value.
type ProductChanges struct {
	Name          *string
	Description   *string
	Category      *string
	Price         *decimal.Decimal
	StockQuantity *int
	ImageURL      *string
}

// IsEmpty reports whether no field would change.
func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Category == nil &&
		c.Price == nil && c.StockQuantity == nil && c.ImageURL == nil
}
