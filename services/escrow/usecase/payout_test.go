package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekberid/rekber/internal/pkg/models"
)

func releasedEvent() *models.EscrowReleasedEvent {
	return &models.EscrowReleasedEvent{
		HoldID:     uuid.New(),
		SellerID:   uuid.New(),
		Amount:     500,
		Currency:   "IDR",
		Trigger:    models.TriggerBuyerConfirmation,
		ReleasedAt: time.Now(),
	}
}

func TestExecutePayout(t *testing.T) {
	t.Run("first delivery creates the record and transfers once", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		event := releasedEvent()
		key := event.IdempotencyKey()

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), key).Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().CreatePayoutRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.PayoutRecord) error {
				assert.Equal(t, event.SellerID, record.SellerID)
				assert.Equal(t, key, record.IdempotencyKey)
				assert.Equal(t, models.PayoutStatusPending, record.Status)
				record.ID = uuid.New()
				return nil
			})
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
				assert.Equal(t, key, req.IdempotencyKey)
				assert.Equal(t, int64(500), req.Amount)
				return &models.TransferResult{ExternalRef: "bank-trx-001"}, nil
			}).Times(1)
		mockRepo.EXPECT().MarkPayoutSucceeded(gomock.Any(), gomock.Any(), "bank-trx-001").Return(nil)

		err := uc.ExecutePayout(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("redelivered event with a succeeded record skips the gateway", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		event := releasedEvent()
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), event.IdempotencyKey()).
			Return(&models.PayoutRecord{
				ID:             uuid.New(),
				SellerID:       event.SellerID,
				Amount:         500,
				Status:         models.PayoutStatusSucceeded,
				IdempotencyKey: event.IdempotencyKey(),
			}, nil)

		// no Transfer expectation: the dedup check must short-circuit
		err := uc.ExecutePayout(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("pending record from a crashed attempt is re-driven with the same key", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		event := releasedEvent()
		key := event.IdempotencyKey()
		record := &models.PayoutRecord{
			ID:             uuid.New(),
			SellerID:       event.SellerID,
			Amount:         500,
			Currency:       "IDR",
			Status:         models.PayoutStatusPending,
			IdempotencyKey: key,
		}

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), key).Return(record, nil)
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
				assert.Equal(t, key, req.IdempotencyKey)
				return &models.TransferResult{ExternalRef: "bank-trx-002"}, nil
			})
		mockRepo.EXPECT().MarkPayoutSucceeded(gomock.Any(), record.ID, "bank-trx-002").Return(nil)

		err := uc.ExecutePayout(context.Background(), event)
		assert.NoError(t, err)
	})

	t.Run("definite gateway rejection marks the record failed", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		event := releasedEvent()
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), event.IdempotencyKey()).
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().CreatePayoutRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.PayoutRecord) error {
				record.ID = uuid.New()
				return nil
			})
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(nil, models.ErrExternalService).Times(4)
		mockRepo.EXPECT().MarkPayoutFailed(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := uc.ExecutePayout(context.Background(), event)
		assert.ErrorIs(t, err, models.ErrExternalService)
	})

	t.Run("timeout keeps the record pending for a later re-drive", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		event := releasedEvent()
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), event.IdempotencyKey()).
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().CreatePayoutRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.PayoutRecord) error {
				record.ID = uuid.New()
				return nil
			})
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(nil, models.ErrGatewayTimeout).Times(4)
		// no MarkPayoutFailed: the outcome is unknown, not failed

		err := uc.ExecutePayout(context.Background(), event)
		assert.ErrorIs(t, err, models.ErrGatewayTimeout)
	})

	t.Run("fully refunded split releases nothing", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		event := releasedEvent()
		event.Amount = 0

		err := uc.ExecutePayout(context.Background(), event)
		assert.NoError(t, err)
	})
}

func TestWithdraw(t *testing.T) {
	sellerID := uuid.New()

	releasedHold := func(amount int64) *models.EscrowHold {
		return &models.EscrowHold{
			ID:             uuid.New(),
			SellerID:       sellerID,
			Amount:         amount,
			Currency:       "IDR",
			Status:         models.HoldStatusReleased,
			ReleasedAmount: amount,
		}
	}

	t.Run("transfers from the available balance", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-1").
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().ListHoldsBySeller(gomock.Any(), sellerID).
			Return([]*models.EscrowHold{releasedHold(1000)}, nil)
		mockRepo.EXPECT().ListPayoutsBySeller(gomock.Any(), sellerID).
			Return([]*models.PayoutRecord{}, nil)
		mockRepo.EXPECT().CreatePayoutRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.PayoutRecord) error {
				assert.Equal(t, sellerID, record.SellerID)
				assert.Equal(t, int64(400), record.Amount)
				record.ID = uuid.New()
				return nil
			})
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			Return(&models.TransferResult{ExternalRef: "bank-trx-010"}, nil)
		mockRepo.EXPECT().MarkPayoutSucceeded(gomock.Any(), gomock.Any(), "bank-trx-010").Return(nil)
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-1").
			Return(&models.PayoutRecord{
				SellerID:       sellerID,
				Amount:         400,
				Status:         models.PayoutStatusSucceeded,
				IdempotencyKey: "wd-1",
			}, nil)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         400,
			IdempotencyKey: "wd-1",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PayoutStatusSucceeded, record.Status)
	})

	t.Run("rejects a withdrawal above the available balance", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-2").
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().ListHoldsBySeller(gomock.Any(), sellerID).
			Return([]*models.EscrowHold{releasedHold(300)}, nil)
		mockRepo.EXPECT().ListPayoutsBySeller(gomock.Any(), sellerID).
			Return([]*models.PayoutRecord{}, nil)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         400,
			IdempotencyKey: "wd-2",
		})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, models.ErrInsufficientBalance)
	})

	t.Run("a pending attempt reserves the balance until it settles", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		inFlight := &models.PayoutRecord{
			ID:             uuid.New(),
			SellerID:       sellerID,
			Amount:         700,
			Status:         models.PayoutStatusPending,
			IdempotencyKey: "wd-other",
		}

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-6").
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().ListHoldsBySeller(gomock.Any(), sellerID).
			Return([]*models.EscrowHold{releasedHold(1000)}, nil)
		mockRepo.EXPECT().ListPayoutsBySeller(gomock.Any(), sellerID).
			Return([]*models.PayoutRecord{inFlight}, nil)

		// 1000 released, 700 possibly in flight: only 300 is withdrawable
		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         400,
			IdempotencyKey: "wd-6",
		})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, models.ErrInsufficientBalance)
	})

	t.Run("replayed key returns the earlier payout without a second transfer", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		existing := &models.PayoutRecord{
			ID:             uuid.New(),
			SellerID:       sellerID,
			Amount:         400,
			Status:         models.PayoutStatusSucceeded,
			IdempotencyKey: "wd-3",
		}
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-3").Return(existing, nil)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         400,
			IdempotencyKey: "wd-3",
		})
		require.NoError(t, err)
		assert.Equal(t, existing.ID, record.ID)
	})

	t.Run("rejects a key that belongs to another seller", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), "wd-4").
			Return(&models.PayoutRecord{
				ID:             uuid.New(),
				SellerID:       uuid.New(),
				Status:         models.PayoutStatusSucceeded,
				IdempotencyKey: "wd-4",
			}, nil)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         100,
			IdempotencyKey: "wd-4",
		})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{
			Amount:         0,
			IdempotencyKey: "wd-5",
		})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
	})

	t.Run("requires an idempotency key", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		record, err := uc.Withdraw(context.Background(), sellerID, &models.WithdrawRequest{Amount: 100})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}
