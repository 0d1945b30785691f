package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUsecase exposes the configured product catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// UpdateProduct fails with a method-not-allowed error when the catalog is remote.
	UpdateProduct(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error)
}
