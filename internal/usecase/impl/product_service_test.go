package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProduct_NotFound(t *testing.T) {
	catalog := mockSvc.NewMockProductCatalog(t)
	srv := NewProductService(catalog, newDiscardLogger())
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, int64(99)).Return(nil, domainerrors.ErrProductNotFound)

	_, err := srv.GetProduct(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestProductService_ListByCategory(t *testing.T) {
	catalog := mockSvc.NewMockProductCatalog(t)
	srv := NewProductService(catalog, newDiscardLogger())
	ctx := context.Background()

	catalog.EXPECT().ListByCategory(ctx, "lighting").Return([]*entity.Product{{ID: 1}, {ID: 2}}, nil)

	products, err := srv.ListByCategory(ctx, " lighting ")

	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = srv.ListByCategory(ctx, "  ")
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	price := decimal.RequireFromString("4.99")

	t.Run("applies changes", func(t *testing.T) {
		catalog := mockSvc.NewMockProductCatalog(t)
		srv := NewProductService(catalog, newDiscardLogger())
		changes := entity.ProductChanges{Price: &price}

		catalog.EXPECT().UpdateProduct(ctx, int64(3), changes).Return(&entity.Product{ID: 3, Price: price}, nil)

		product, err := srv.UpdateProduct(ctx, 3, changes)

		require.NoError(t, err)
		assert.True(t, price.Equal(product.Price))
	})

	t.Run("negative values rejected", func(t *testing.T) {
		srv := NewProductService(mockSvc.NewMockProductCatalog(t), newDiscardLogger())
		negative := decimal.RequireFromString("-1")
		stock := -2

		_, err := srv.UpdateProduct(ctx, 3, entity.ProductChanges{Price: &negative})
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))

		_, err = srv.UpdateProduct(ctx, 3, entity.ProductChanges{StockQuantity: &stock})
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	})

	t.Run("remote catalog is read-only", func(t *testing.T) {
		catalog := mockSvc.NewMockProductCatalog(t)
		srv := NewProductService(catalog, newDiscardLogger())
		changes := entity.ProductChanges{Price: &price}

		catalog.EXPECT().UpdateProduct(ctx, int64(3), changes).Return(nil, domainerrors.ErrCatalogReadOnly)

		_, err := srv.UpdateProduct(ctx, 3, changes)

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindMethodNotAllowed))
	})

	t.Run("missing product", func(t *testing.T) {
		catalog := mockSvc.NewMockProductCatalog(t)
		srv := NewProductService(catalog, newDiscardLogger())
		changes := entity.ProductChanges{Price: &price}

		catalog.EXPECT().UpdateProduct(ctx, int64(404), changes).Return(nil, domainerrors.ErrProductNotFound)

		_, err := srv.UpdateProduct(ctx, 404, changes)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
