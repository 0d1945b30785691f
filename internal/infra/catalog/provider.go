// Package catalog provides the product catalog backends: the local products
// table or a read-only remote HTTP catalog.
package catalog

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the ProductCatalog, injected by Fx
type Params struct {
	fx.In

	Config      *config.Config
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductCatalog selects the catalog backend from configuration.
func NewProductCatalog(params Params) (service.ProductCatalog, error) {
	cfg := params.Config.Catalog
	if cfg == nil {
		cfg = &config.CatalogConfig{Provider: constants.CatalogProviderLocal}
	}

	switch cfg.Provider {
	case "", constants.CatalogProviderLocal:
		params.Logger.Info("Using local product catalog")

		return NewLocalCatalog(params.ProductRepo, cfg.ListLimit), nil

	case constants.CatalogProviderRemote:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for remote catalog")
		}
		params.Logger.Info("Using remote product catalog", slog.String("base_url", cfg.BaseURL))

		return NewRemoteCatalog(cfg.BaseURL, cfg.Timeout, cfg.ListLimit, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown catalog provider: %s", cfg.Provider)
	}
}

// Module provides the catalog FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProductCatalog),
)
