package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface over the configured catalog.
type productService struct {
	catalog service.ProductCatalog
	logger  *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(catalog service.ProductCatalog, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		catalog: catalog,
		logger:  logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %d", id)
	}

	return product, nil
}

func (srv *productService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.catalog.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *productService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category is required")
	}

	products, err := srv.catalog.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list products in category %q", category)
	}

	return products, nil
}

// UpdateProduct applies a partial catalog update. Remote catalogs reject it.
func (srv *productService) UpdateProduct(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error) {
	if changes.Price != nil && changes.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if changes.StockQuantity != nil && *changes.StockQuantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock_quantity must not be negative")
	}

	product, err := srv.catalog.UpdateProduct(ctx, id, changes)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update product %d", id)
	}

	srv.log(ctx).Info("Product updated", slog.Int64("product_id", id))

	return product, nil
}
