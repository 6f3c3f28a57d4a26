package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/services/escrow/mocks"
)

const testWebhookSecret = "test-webhook-secret"

func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookContext(e *echo.Echo, body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlePaymentWebhook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWebhookHandler(mockUC, models.GatewayConfig{WebhookSecret: testWebhookSecret})

	e := echo.New()
	body := `{"external_ref": "pg-ref-001", "status": "settlement", "amount": 500}`
	c, rec := newWebhookContext(e, body, signBody(body))

	mockUC.EXPECT().
		HandlePaymentCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, callback *models.PaymentCallback) error {
			assert.Equal(t, "pg-ref-001", callback.ExternalRef)
			assert.Equal(t, "settlement", callback.Status)
			assert.Equal(t, int64(500), callback.Amount)
			return nil
		})

	err := handler.HandlePaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePaymentWebhook_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWebhookHandler(mockUC, models.GatewayConfig{WebhookSecret: testWebhookSecret})

	e := echo.New()
	body := `{"external_ref": "pg-ref-001", "status": "settlement"}`
	c, rec := newWebhookContext(e, body, "deadbeef")

	// no usecase expectation: an unverified payload must have no ledger effect
	err := handler.HandlePaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlePaymentWebhook_MissingSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWebhookHandler(mockUC, models.GatewayConfig{WebhookSecret: testWebhookSecret})

	e := echo.New()
	body := `{"external_ref": "pg-ref-001", "status": "settlement"}`
	c, rec := newWebhookContext(e, body, "")

	err := handler.HandlePaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlePaymentWebhook_TamperedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWebhookHandler(mockUC, models.GatewayConfig{WebhookSecret: testWebhookSecret})

	e := echo.New()
	signed := `{"external_ref": "pg-ref-001", "status": "settlement", "amount": 500}`
	tampered := `{"external_ref": "pg-ref-001", "status": "settlement", "amount": 1}`
	c, rec := newWebhookContext(e, tampered, signBody(signed))

	err := handler.HandlePaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlePaymentWebhook_UnknownTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWebhookHandler(mockUC, models.GatewayConfig{WebhookSecret: testWebhookSecret})

	e := echo.New()
	body := `{"external_ref": "pg-ref-unknown", "status": "settlement"}`
	c, rec := newWebhookContext(e, body, signBody(body))

	mockUC.EXPECT().
		HandlePaymentCallback(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("transaction: %w", models.ErrNotFound))

	err := handler.HandlePaymentWebhook(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
