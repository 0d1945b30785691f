package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultRemoteTimeout = 5 * time.Second
	maxErrorBodyBytes    = 512
)

// remoteProduct is the product shape served by dummyjson-compatible catalogs.
type remoteProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Thumbnail   string          `json:"thumbnail"`
}

type remoteProductList struct {
	Products []remoteProduct `json:"products"`
}

// remoteCategory covers catalogs that return category objects instead of plain names.
type remoteCategory struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// remoteCatalog reads products from an external HTTP catalog. It is read-only.
type remoteCatalog struct {
	baseURL    string
	listLimit  int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRemoteCatalog creates a catalog client against baseURL.
func NewRemoteCatalog(baseURL string, timeout time.Duration, listLimit int, logger *slog.Logger) service.ProductCatalog {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	return &remoteCatalog{
		baseURL:    strings.TrimRight(baseURL, "/"),
		listLimit:  listLimit,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *remoteCatalog) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *remoteCatalog) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var list remoteProductList
	query := url.Values{"limit": []string{strconv.Itoa(c.listLimit)}}
	if err := c.get(ctx, "/products?"+query.Encode(), &list); err != nil {
		return nil, err
	}

	return toProducts(list.Products), nil
}

func (c *remoteCatalog) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product remoteProduct
	if err := c.get(ctx, "/products/"+strconv.FormatInt(id, 10), &product); err != nil {
		return nil, err
	}

	return product.toEntity(), nil
}

func (c *remoteCatalog) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var list remoteProductList
	if err := c.get(ctx, "/products/category/"+url.PathEscape(category), &list); err != nil {
		return nil, err
	}

	return toProducts(list.Products), nil
}

func (c *remoteCatalog) ListCategories(ctx context.Context) ([]string, error) {
	var raw []json.RawMessage
	if err := c.get(ctx, "/products/categories", &raw); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			categories = append(categories, name)

			continue
		}

		var category remoteCategory
		if err := json.Unmarshal(item, &category); err != nil {
			return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable, "unexpected category payload")
		}
		if category.Slug != "" {
			categories = append(categories, category.Slug)
		} else {
			categories = append(categories, category.Name)
		}
	}

	return categories, nil
}

// UpdateProduct always fails: the remote catalog is owned elsewhere.
func (c *remoteCatalog) UpdateProduct(context.Context, int64, entity.ProductChanges) (*entity.Product, error) {
	return nil, domainerrors.ErrCatalogReadOnly
}

func (c *remoteCatalog) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx).Error("Remote catalog request failed", slog.String("path", path), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrCatalogUnavailable, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.ErrProductNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.log(ctx).Error("Remote catalog returned error status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return errors.Wrapf(domainerrors.ErrCatalogUnavailable, "status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(domainerrors.ErrCatalogUnavailable, "failed to decode catalog response")
	}

	return nil
}

func (p remoteProduct) toEntity() *entity.Product {
	return &entity.Product{
		ID:            p.ID,
		Name:          p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.Stock,
		ImageURL:      p.Thumbnail,
	}
}

func toProducts(items []remoteProduct) []*entity.Product {
	products := make([]*entity.Product, 0, len(items))
	for _, item := range items {
		products = append(products, item.toEntity())
	}

	return products
}
