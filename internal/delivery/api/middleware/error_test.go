package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders", nil), rec)

	m.HandleHTTPError(err, c)

	return rec, buf.String()
}

func TestHandleHTTPError_AppErrorKeepsDetails(t *testing.T) {
	rec, logs := handle(t, errors.Wrap(domainerrors.ErrCartEmpty.WithDetails("cart has no items"), "checkout"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"CART_EMPTY"`)
	assert.Contains(t, rec.Body.String(), "cart has no items")
	assert.Empty(t, logs)
}

func TestHandleHTTPError_InternalIsLoggedAndHidden(t *testing.T) {
	rec, logs := handle(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock"), "insert order"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "deadlock")
	assert.Contains(t, logs, "deadlock")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, _ := handle(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
