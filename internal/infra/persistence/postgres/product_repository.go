package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements repository.ProductRepository for the local catalog.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List returns up to limit products ordered by ID.
func (repo *productRepository) List(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Limit(limit).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(productModels), nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// ListByCategory returns up to limit products in a category.
func (repo *productRepository) ListByCategory(ctx context.Context, category string, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductsDomain(productModels), nil
}

// ListCategories returns the distinct categories in alphabetical order.
func (repo *productRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Update applies the non-nil fields of changes and returns the stored product.
func (repo *productRepository) Update(ctx context.Context, id int64, changes entity.ProductChanges) (*entity.Product, error) {
	updates := productUpdates(changes)
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	var updated []model.ProductModel
	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price and stock must not be negative")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&updated[0]), nil
}

func productUpdates(changes entity.ProductChanges) map[string]any {
	updates := make(map[string]any)
	if changes.Name != nil {
		updates["name"] = *changes.Name
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Category != nil {
		updates["category"] = *changes.Category
	}
	if changes.Price != nil {
		updates["price"] = *changes.Price
	}
	if changes.StockQuantity != nil {
		updates["stock_quantity"] = *changes.StockQuantity
	}
	if changes.ImageURL != nil {
		updates["image_url"] = *changes.ImageURL
	}

	return updates
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Category:      data.Category,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		ImageURL:      data.ImageURL,
	}
}

func toProductsDomain(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}
