package catalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRemoteServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"products":[
			{"id":1,"title":"Mascara","description":"d","category":"beauty","price":9.99,"stock":5,"thumbnail":"t1"},
			{"id":2,"title":"Lamp","description":"d","category":"home-decoration","price":19.5,"stock":0,"thumbnail":"t2"}
		],"total":2}`)
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":1,"title":"Mascara","category":"beauty","price":9.99,"stock":5}`)
	})
	mux.HandleFunc("/products/999", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/products/500", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"slug":"beauty","name":"Beauty"},"groceries"]`)
	})
	mux.HandleFunc("/products/category/home-decoration", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"products":[{"id":2,"title":"Lamp","category":"home-decoration","price":19.5}]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestRemoteCatalog_ListProducts(t *testing.T) {
	server := newTestRemoteServer(t)
	catalog := NewRemoteCatalog(server.URL+"/", time.Second, 2, newDiscardLogger())

	products, err := catalog.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mascara", products[0].Name)
	assert.True(t, decimal.RequireFromString("9.99").Equal(products[0].Price))
	assert.Equal(t, "t2", products[1].ImageURL)
}

func TestRemoteCatalog_GetProduct(t *testing.T) {
	server := newTestRemoteServer(t)
	catalog := NewRemoteCatalog(server.URL, time.Second, 2, newDiscardLogger())

	product, err := catalog.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)

	_, err = catalog.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	_, err = catalog.GetProduct(context.Background(), 500)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindInternal))
}

func TestRemoteCatalog_Categories(t *testing.T) {
	server := newTestRemoteServer(t)
	catalog := NewRemoteCatalog(server.URL, time.Second, 2, newDiscardLogger())

	categories, err := catalog.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"beauty", "groceries"}, categories)

	products, err := catalog.ListByCategory(context.Background(), "home-decoration")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Name)
}

func TestRemoteCatalog_UpdateIsReadOnly(t *testing.T) {
	catalog := NewRemoteCatalog("http://unused", time.Second, 2, newDiscardLogger())
	name := "x"

	_, err := catalog.UpdateProduct(context.Background(), 1, entity.ProductChanges{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrCatalogReadOnly)
	assert.Equal(t, http.StatusMethodNotAllowed, domainerrors.KindOf(err).HTTPCode())
}

func TestRemoteCatalog_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	catalog := NewRemoteCatalog(url, time.Second, 2, newDiscardLogger())
	_, err := catalog.ListProducts(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
}
