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

func TestSweepAutoRelease(t *testing.T) {
	t.Run("releases every eligible hold independently", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		first := heldHold()
		second := heldHold()
		second.Amount = 750

		mockRepo.EXPECT().ListAutoReleasable(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cutoff time.Time) ([]*models.EscrowHold, error) {
				assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, 5*time.Second)
				return []*models.EscrowHold{first, second}, nil
			})
		mockRepo.EXPECT().ListReleasedWithoutPayout(gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().SettleHold(gomock.Any(), first.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(500), int64(0)).
			Return(true, nil)
		mockRepo.EXPECT().SettleHold(gomock.Any(), second.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(750), int64(0)).
			Return(true, nil)
		mockGW.EXPECT().PublishReleased(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *models.EscrowReleasedEvent) error {
				assert.Equal(t, models.TriggerAutoRelease, event.Trigger)
				return nil
			}).Times(2)

		results, err := uc.SweepAutoRelease(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, models.SweepOutcomeReleased, results[0].Outcome)
		assert.Equal(t, models.SweepOutcomeReleased, results[1].Outcome)
	})

	t.Run("a hold settled mid-sweep degrades to a no-op", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		racing := heldHold()
		winner := heldHold()

		released := *racing
		released.Status = models.HoldStatusReleased
		released.ReleasedAmount = racing.Amount

		mockRepo.EXPECT().ListAutoReleasable(gomock.Any(), gomock.Any()).
			Return([]*models.EscrowHold{racing, winner}, nil)
		mockRepo.EXPECT().ListReleasedWithoutPayout(gomock.Any()).Return(nil, nil)
		// a buyer confirmation beat the sweep to the first hold
		mockRepo.EXPECT().SettleHold(gomock.Any(), racing.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(500), int64(0)).
			Return(false, nil)
		mockRepo.EXPECT().GetHoldByID(gomock.Any(), racing.ID).Return(&released, nil)
		mockRepo.EXPECT().SettleHold(gomock.Any(), winner.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(500), int64(0)).
			Return(true, nil)
		mockGW.EXPECT().PublishReleased(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		results, err := uc.SweepAutoRelease(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, models.SweepOutcomeNoOp, results[0].Outcome)
		assert.Equal(t, models.SweepOutcomeReleased, results[1].Outcome)
	})

	t.Run("a refunded hold in the batch never aborts the rest", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		refunded := heldHold()
		healthy := heldHold()

		refundedNow := *refunded
		refundedNow.Status = models.HoldStatusRefunded
		refundedNow.RefundedAmount = refunded.Amount

		mockRepo.EXPECT().ListAutoReleasable(gomock.Any(), gomock.Any()).
			Return([]*models.EscrowHold{refunded, healthy}, nil)
		mockRepo.EXPECT().ListReleasedWithoutPayout(gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().SettleHold(gomock.Any(), refunded.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(500), int64(0)).
			Return(false, nil)
		mockRepo.EXPECT().GetHoldByID(gomock.Any(), refunded.ID).Return(&refundedNow, nil)
		mockRepo.EXPECT().SettleHold(gomock.Any(), healthy.ID, models.HoldStatusHeld, models.HoldStatusReleased, int64(500), int64(0)).
			Return(true, nil)
		mockGW.EXPECT().PublishReleased(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		results, err := uc.SweepAutoRelease(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, models.SweepOutcomeNoOp, results[0].Outcome)
		assert.Equal(t, models.SweepOutcomeReleased, results[1].Outcome)
	})

	t.Run("empty batch returns an empty result list", func(t *testing.T) {
		uc, mockRepo, _ := newTestUC(t)

		mockRepo.EXPECT().ListAutoReleasable(gomock.Any(), gomock.Any()).
			Return([]*models.EscrowHold{}, nil)
		mockRepo.EXPECT().ListReleasedWithoutPayout(gomock.Any()).Return(nil, nil)

		results, err := uc.SweepAutoRelease(context.Background())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("re-executes payouts for released holds the executor never saw", func(t *testing.T) {
		uc, mockRepo, mockGW := newTestUC(t)

		releasedAt := time.Now().Add(-time.Hour)
		orphan := heldHold()
		orphan.Status = models.HoldStatusReleased
		orphan.ReleasedAmount = orphan.Amount
		orphan.ReleasedAt = &releasedAt

		key := "release-" + orphan.ID.String()

		mockRepo.EXPECT().ListAutoReleasable(gomock.Any(), gomock.Any()).
			Return([]*models.EscrowHold{}, nil)
		mockRepo.EXPECT().ListReleasedWithoutPayout(gomock.Any()).
			Return([]*models.EscrowHold{orphan}, nil)
		mockRepo.EXPECT().GetPayoutByIdempotencyKey(gomock.Any(), key).
			Return(nil, models.ErrNotFound)
		mockRepo.EXPECT().CreatePayoutRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *models.PayoutRecord) error {
				assert.Equal(t, key, record.IdempotencyKey)
				assert.Equal(t, orphan.Amount, record.Amount)
				record.ID = uuid.New()
				return nil
			})
		mockGW.EXPECT().Transfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
				assert.Equal(t, key, req.IdempotencyKey)
				return &models.TransferResult{ExternalRef: "bank-trx-042"}, nil
			})
		mockRepo.EXPECT().MarkPayoutSucceeded(gomock.Any(), gomock.Any(), "bank-trx-042").Return(nil)

		results, err := uc.SweepAutoRelease(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, models.SweepOutcomePayoutRedriven, results[0].Outcome)
		assert.Equal(t, orphan.ID, results[0].HoldID)
	})
}
