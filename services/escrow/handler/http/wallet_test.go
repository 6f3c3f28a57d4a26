package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/services/escrow/mocks"
)

func TestGetWallet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWalletHandler(mockUC)

	e := echo.New()
	sellerID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", sellerID)

	mockUC.EXPECT().
		GetWallet(gomock.Any(), sellerID).
		Return(&models.WalletBalance{
			SellerID:  sellerID,
			Pending:   700,
			Available: 1300,
			Refunded:  400,
			Paid:      600,
			Currency:  "IDR",
		}, nil)

	err := handler.GetWallet(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(700), data["pending"])
	assert.Equal(t, float64(1300), data["available"])
	assert.Equal(t, float64(400), data["refunded"])
	assert.Equal(t, float64(600), data["paid"])
}

func TestGetWallet_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWalletHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetWallet(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWalletHandler(mockUC)

	e := echo.New()
	sellerID := uuid.New()
	body := `{"amount": 400, "idempotency_key": "wd-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/withdraw", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", sellerID)

	mockUC.EXPECT().
		Withdraw(gomock.Any(), sellerID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *models.WithdrawRequest) (*models.PayoutRecord, error) {
			assert.Equal(t, int64(400), req.Amount)
			assert.Equal(t, "wd-1", req.IdempotencyKey)
			return &models.PayoutRecord{
				ID:             uuid.New(),
				SellerID:       sellerID,
				Amount:         400,
				Status:         models.PayoutStatusSucceeded,
				IdempotencyKey: "wd-1",
			}, nil
		})

	err := handler.Withdraw(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "succeeded", data["status"])
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewWalletHandler(mockUC)

	e := echo.New()
	sellerID := uuid.New()
	body := `{"amount": 99999, "idempotency_key": "wd-2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/withdraw", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", sellerID)

	mockUC.EXPECT().
		Withdraw(gomock.Any(), sellerID, gomock.Any()).
		Return(nil, models.ErrInsufficientBalance)

	err := handler.Withdraw(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
