package catalog

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultListLimit = 100

// localCatalog serves products from the products table.
type localCatalog struct {
	repo      repository.ProductRepository
	listLimit int
}

// NewLocalCatalog wraps a ProductRepository as a ProductCatalog.
func NewLocalCatalog(repo repository.ProductRepository, listLimit int) service.ProductCatalog {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	return &localCatalog{repo: repo, listLimit: listLimit}
}

func (c *localCatalog) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := c.repo.List(ctx, c.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (c *localCatalog) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func (c *localCatalog) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := c.repo.ListByCategory(ctx, category, c.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

func (c *localCatalog) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := c.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// UpdateProduct applies a partial update to a stored product.
func (c *localCatalog) UpdateProduct(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error) {
	if changes.IsEmpty() {
		return c.GetProduct(ctx, id)
	}

	product, err := c.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, mapProductError(err)
	}

	return product, nil
}

func mapProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to load product")
}
