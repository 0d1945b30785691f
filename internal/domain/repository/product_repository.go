package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is not in the local catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the local product catalog.
type ProductRepository interface {
	List(ctx context.Context, limit int) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	// Update applies changes and returns the stored row.
	Update(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error)
}
