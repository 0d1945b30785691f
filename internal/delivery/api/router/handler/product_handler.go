package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// UpdateProductRequest is a partial catalog update. Price accepts a JSON number or string.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,url"`
}

func (r *UpdateProductRequest) changes() entity.ProductChanges {
	return entity.ProductChanges{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

// GetProduct handles GET /products/:product_id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := productIDParam(c, "product_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// ListCategories handles GET /products/categories
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListByCategory handles GET /products/category/:category
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.productUC.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

// UpdateProduct handles PUT /products/:product_id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := productIDParam(c, "product_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	changes := req.changes()
	if changes.IsEmpty() {
		return response.BadRequest(c, "VALIDATION_ERROR", "No fields to update")
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, changes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}
