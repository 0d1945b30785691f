package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUC "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushTestConfig(provider, env string) *config.Config {
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: provider},
		Worker: &config.WorkerConfig{PushPath: "/push", PushServiceAccount: "pusher@example.iam.gserviceaccount.com"},
	}
	cfg.Env.Env = env

	return cfg
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockOrderEventUsecase) {
	orderEventUC := mockUC.NewMockOrderEventUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		OrderEventUC: orderEventUC,
	})

	return h, orderEventUC
}

func pushBody(t *testing.T, event *service.OrderPlacedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_ProcessesOrderEvent(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, constants.EnvLocal))
	event := &service.OrderPlacedEvent{OrderID: "o-1", UserID: "u-1", TotalAmount: "21.30"}

	var seenRequestID string
	orderEventUC.EXPECT().
		HandleOrderPlaced(mock.Anything, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool { return e.OrderID == "o-1" })).
		Run(func(ctx context.Context, _ *service.OrderPlacedEvent) {
			seenRequestID = deliverycontext.GetRequestIDFromContext(ctx)
		}).
		Return(nil)

	rec := push(h, pushBody(t, event, map[string]string{"event_type": service.EventTypeOrderPlaced, "request_id": "req-9"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-9", seenRequestID)
}

func TestHandlePush_TransientFailureAsksForRedelivery(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, constants.EnvLocal))

	orderEventUC.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	rec := push(h, pushBody(t, &service.OrderPlacedEvent{OrderID: "o-1"}, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcknowledged(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, constants.EnvLocal))

	orderEventUC.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).Return(domainerrors.ErrOrderNotFound)

	rec := push(h, pushBody(t, &service.OrderPlacedEvent{OrderID: "o-1"}, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h, _ := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, constants.EnvLocal))

	assert.Equal(t, http.StatusBadRequest, push(h, `{"message":{"data":"%%%"}}`, nil).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, push(h, `{"message":{"data":"`+notJSON+`"}}`, nil).Code)
}

func TestHandlePush_IgnoresOtherEventTypes(t *testing.T) {
	h, _ := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, constants.EnvLocal))

	rec := push(h, pushBody(t, &service.OrderPlacedEvent{}, map[string]string{"event_type": "order.cancelled"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_GoogleProviderRequiresToken(t *testing.T) {
	h, orderEventUC := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderGoogle, "production"))
	require.True(t, h.verifyPushAuth)

	var seenAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		seenAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": "pusher@example.iam.gserviceaccount.com", "email_verified": true},
		}, nil
	}
	body := pushBody(t, &service.OrderPlacedEvent{OrderID: "o-1"}, nil)

	assert.Equal(t, http.StatusUnauthorized, push(h, body, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, push(h, body, http.Header{"Authorization": {"Bearer bad"}}).Code)
	assert.Equal(t, "http://example.com/push", seenAudience)

	orderEventUC.EXPECT().HandleOrderPlaced(mock.Anything, mock.Anything).Return(nil)
	assert.Equal(t, http.StatusOK, push(h, body, http.Header{"Authorization": {"Bearer good"}}).Code)
}

func TestHandlePush_RejectsUnexpectedServiceAccount(t *testing.T) {
	h, _ := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderGoogle, "production"))
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer: "accounts.google.com",
			Claims: map[string]any{"email": "someone-else@example.com"},
		}, nil
	}

	rec := push(h, pushBody(t, &service.OrderPlacedEvent{}, nil), http.Header{"Authorization": {"Bearer tok"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsAuthOutsideProduction(t *testing.T) {
	for _, env := range []string{constants.EnvLocal, constants.EnvDevelop} {
		h, _ := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderGoogle, env))
		assert.False(t, h.verifyPushAuth, env)
	}

	h, _ := newTestPushHandler(t, newPushTestConfig(constants.PubSubProviderLocal, "production"))
	assert.False(t, h.verifyPushAuth)
}
