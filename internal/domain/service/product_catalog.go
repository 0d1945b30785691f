package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductCatalog is the single source of product data, either the local
// products table or an external HTTP catalog.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	// UpdateProduct fails with ErrCatalogReadOnly when the catalog is remote.
	UpdateProduct(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error)
}
