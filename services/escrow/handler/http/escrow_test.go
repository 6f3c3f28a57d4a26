package http

import (
	"encoding/json"
	"fmt"
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

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLockFunds_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	transactionID := uuid.New()
	holdID := uuid.New()
	body := fmt.Sprintf(`{"transaction_id": %q}`, transactionID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/lock", body)

	mockUC.EXPECT().
		LockFunds(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.LockRequest) (*models.LockResult, error) {
			assert.Equal(t, transactionID.String(), req.TransactionID)
			return &models.LockResult{
				HoldID:           holdID,
				ConfirmationCode: "A1B2C3D4",
				Amount:           500,
				Currency:         "IDR",
			}, nil
		})

	err := handler.LockFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, holdID.String(), data["hold_id"])
	assert.Equal(t, "A1B2C3D4", data["confirmation_code"])
}

func TestLockFunds_AlreadyLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	body := fmt.Sprintf(`{"transaction_id": %q}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/lock", body)

	mockUC.EXPECT().
		LockFunds(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("hold is released: %w", models.ErrAlreadyLocked))

	err := handler.LockFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLockFunds_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/lock", `{invalid_json}`)

	err := handler.LockFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReleaseFunds_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	holdID := uuid.New()
	body := fmt.Sprintf(`{"hold_id": %q}`, holdID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/release", body)

	mockUC.EXPECT().
		ReleaseFunds(gomock.Any(), gomock.Any()).
		Return(&models.SettlementResult{
			HoldID:         holdID,
			Status:         models.HoldStatusReleased,
			ReleasedAmount: 500,
		}, nil)

	err := handler.ReleaseFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "released", data["status"])
	assert.Equal(t, false, data["no_op"])
}

func TestReleaseFunds_IdempotentRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	holdID := uuid.New()
	body := fmt.Sprintf(`{"hold_id": %q}`, holdID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/release", body)

	mockUC.EXPECT().
		ReleaseFunds(gomock.Any(), gomock.Any()).
		Return(&models.SettlementResult{
			HoldID:         holdID,
			Status:         models.HoldStatusReleased,
			ReleasedAmount: 500,
			NoOp:           true,
		}, nil)

	err := handler.ReleaseFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["no_op"])
}

func TestRefundFunds_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	body := fmt.Sprintf(`{"hold_id": %q, "reason": "buyer request"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/refund", body)

	mockUC.EXPECT().
		RefundFunds(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("hold already released: %w", models.ErrAlreadyTerminal))

	err := handler.RefundFunds(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConfirmDelivery_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	transactionID := uuid.New()
	body := fmt.Sprintf(`{"transaction_id": %q, "code": "A1B2C3D4"}`, transactionID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/confirm", body)

	mockUC.EXPECT().
		ConfirmDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.ConfirmDeliveryRequest) (*models.SettlementResult, error) {
			assert.Equal(t, "A1B2C3D4", req.Code)
			return &models.SettlementResult{
				Status:         models.HoldStatusReleased,
				ReleasedAmount: 500,
			}, nil
		})

	err := handler.ConfirmDelivery(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirmDelivery_AlreadyConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	body := fmt.Sprintf(`{"transaction_id": %q, "code": "A1B2C3D4"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/confirm", body)

	mockUC.EXPECT().
		ConfirmDelivery(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrAlreadyConfirmed)

	err := handler.ConfirmDelivery(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitShippingProof_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	body := fmt.Sprintf(`{"transaction_id": %q, "proof_url": "https://cdn.example.com/p/1.jpg"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/escrow/shipping-proof", body)

	mockUC.EXPECT().
		SubmitShippingProof(gomock.Any(), gomock.Any()).
		Return(nil)

	err := handler.SubmitShippingProof(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecordPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	listingID := uuid.New()
	sellerID := uuid.New()
	body := fmt.Sprintf(`{
		"listing_id": %q,
		"seller_id": %q,
		"buyer_contact": "buyer@mail.com",
		"amount": 2500,
		"payment_method": "bank_transfer"
	}`, listingID, sellerID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments", body)

	mockUC.EXPECT().
		RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RecordPaymentRequest) (*models.Transaction, error) {
			assert.Equal(t, int64(2500), req.Amount)
			return &models.Transaction{
				ID:        uuid.New(),
				ListingID: listingID,
				SellerID:  sellerID,
				Amount:    2500,
				Status:    models.TransactionStatusPending,
			}, nil
		})

	err := handler.RecordPayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetHold_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEscrowUC(ctrl)
	handler := NewEscrowHandler(mockUC)

	e := echo.New()
	holdID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/escrow/holds/"+holdID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(holdID.String())

	mockUC.EXPECT().
		GetHold(gomock.Any(), holdID).
		Return(nil, models.ErrNotFound)

	err := handler.GetHold(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
