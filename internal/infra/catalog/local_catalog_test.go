package catalog

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalCatalog_ListUsesLimit(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	catalog := NewLocalCatalog(repo, 25)
	ctx := context.Background()

	repo.EXPECT().List(ctx, 25).Return([]*entity.Product{{ID: 1}}, nil)

	products, err := catalog.ListProducts(ctx)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestLocalCatalog_GetProduct_NotFound(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	catalog := NewLocalCatalog(repo, 0)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrProductNotFound)

	_, err := catalog.GetProduct(ctx, 42)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestLocalCatalog_UpdateProduct(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	catalog := NewLocalCatalog(repo, 0)
	ctx := context.Background()
	price := decimal.RequireFromString("12.50")
	changes := entity.ProductChanges{Price: &price}

	repo.EXPECT().Update(ctx, int64(3), changes).Return(&entity.Product{ID: 3, Price: price}, nil)

	product, err := catalog.UpdateProduct(ctx, 3, changes)

	require.NoError(t, err)
	assert.True(t, price.Equal(product.Price))
}

func TestLocalCatalog_UpdateMissingProduct(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	catalog := NewLocalCatalog(repo, 0)
	ctx := context.Background()
	name := "Lamp"

	repo.EXPECT().Update(ctx, int64(9), entity.ProductChanges{Name: &name}).Return(nil, repository.ErrProductNotFound)

	_, err := catalog.UpdateProduct(ctx, 9, entity.ProductChanges{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestNewProductCatalog_ProviderSelection(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)

	local, err := NewProductCatalog(Params{Config: &config.Config{}, ProductRepo: repo, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &localCatalog{}, local)

	remote, err := NewProductCatalog(Params{
		Config:      &config.Config{Catalog: &config.CatalogConfig{Provider: "remote", BaseURL: "https://dummyjson.com"}},
		ProductRepo: repo,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &remoteCatalog{}, remote)

	_, err = NewProductCatalog(Params{
		Config:      &config.Config{Catalog: &config.CatalogConfig{Provider: "remote"}},
		ProductRepo: repo,
		Logger:      newDiscardLogger(),
	})
	assert.Error(t, err)
}
