package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rekberid/rekber/internal/pkg/models"
)

func holdRows(holds ...*models.EscrowHold) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "transaction_id", "listing_id", "seller_id", "amount", "currency",
		"status", "released_amount", "refunded_amount", "refund_ref",
		"shipped_at", "released_at", "refunded_at", "created_at", "updated_at",
	})
	for _, h := range holds {
		rows.AddRow(
			h.ID, h.TransactionID, h.ListingID, h.SellerID, h.Amount, h.Currency,
			h.Status, h.ReleasedAmount, h.RefundedAmount, h.RefundRef,
			h.ShippedAt, h.ReleasedAt, h.RefundedAt, h.CreatedAt, h.UpdatedAt,
		)
	}
	return rows
}

func testHold(status models.HoldStatus) *models.EscrowHold {
	now := time.Now()
	return &models.EscrowHold{
		ID:            uuid.New(),
		TransactionID: uuid.New(),
		ListingID:     uuid.New(),
		SellerID:      uuid.New(),
		Amount:        150000,
		Currency:      "IDR",
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestCreateHoldWithConfirmation(t *testing.T) {
	t.Run("commits hold and confirmation together", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		hold := testHold(models.HoldStatusHeld)
		hold.ID = uuid.Nil
		conf := &models.DeliveryConfirmation{
			TransactionID: hold.TransactionID,
			Code:          "A1B2C3D4",
		}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO escrow_holds").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO delivery_confirmations").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateHoldWithConfirmation(context.Background(), hold, conf)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, hold.ID)
		assert.NotEqual(t, uuid.Nil, conf.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when hold insert fails", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		hold := testHold(models.HoldStatusHeld)
		conf := &models.DeliveryConfirmation{TransactionID: hold.TransactionID, Code: "A1B2C3D4"}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO escrow_holds").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.CreateHoldWithConfirmation(context.Background(), hold, conf)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetHoldByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		hold := testHold(models.HoldStatusHeld)
		mock.ExpectQuery("SELECT (.+) FROM escrow_holds").
			WithArgs(hold.ID).
			WillReturnRows(holdRows(hold))

		got, err := repo.GetHoldByID(context.Background(), hold.ID)
		require.NoError(t, err)
		assert.Equal(t, hold.ID, got.ID)
		assert.Equal(t, models.HoldStatusHeld, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM escrow_holds").
			WithArgs(id).
			WillReturnRows(holdRows())

		got, err := repo.GetHoldByID(context.Background(), id)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSettleHold(t *testing.T) {
	t.Run("first caller wins the release", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(models.HoldStatusReleased, int64(150000), int64(0), sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.SettleHold(context.Background(), holdID, models.HoldStatusHeld, models.HoldStatusReleased, 150000, 0)
		assert.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("second caller loses the race", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(models.HoldStatusRefunded, int64(0), int64(150000), sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := repo.SettleHold(context.Background(), holdID, models.HoldStatusHeld, models.HoldStatusRefunded, 0, 150000)
		assert.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("rejects a non terminal target", func(t *testing.T) {
		repo, _, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		won, err := repo.SettleHold(context.Background(), uuid.New(), models.HoldStatusHeld, models.HoldStatusDisputed, 0, 0)
		assert.Error(t, err)
		assert.False(t, won)
	})
}

func TestMarkHoldDisputed(t *testing.T) {
	t.Run("pauses a held hold", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(models.HoldStatusDisputed, sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 1))

		won, err := repo.MarkHoldDisputed(context.Background(), holdID)
		assert.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("does nothing on a settled hold", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(models.HoldStatusDisputed, sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 0))

		won, err := repo.MarkHoldDisputed(context.Background(), holdID)
		assert.NoError(t, err)
		assert.False(t, won)
	})
}

func TestSetHoldShipped(t *testing.T) {
	t.Run("stamps the first proof", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		shippedAt := time.Now()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(shippedAt, sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 1))

		stamped, err := repo.SetHoldShipped(context.Background(), holdID, shippedAt)
		assert.NoError(t, err)
		assert.True(t, stamped)
	})

	t.Run("ignores a second proof", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		holdID := uuid.New()
		shippedAt := time.Now()
		mock.ExpectExec("UPDATE escrow_holds").
			WithArgs(shippedAt, sqlmock.AnyArg(), holdID, models.HoldStatusHeld).
			WillReturnResult(sqlmock.NewResult(0, 0))

		stamped, err := repo.SetHoldShipped(context.Background(), holdID, shippedAt)
		assert.NoError(t, err)
		assert.False(t, stamped)
	})
}

func TestListAutoReleasable(t *testing.T) {
	repo, mock, cleanup := setupEscrowRepoTest(t)
	defer cleanup()

	shipped := time.Now().Add(-48 * time.Hour)
	hold := testHold(models.HoldStatusHeld)
	hold.ShippedAt = &shipped
	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM escrow_holds").
		WithArgs(models.HoldStatusHeld, cutoff).
		WillReturnRows(holdRows(hold))

	holds, err := repo.ListAutoReleasable(context.Background(), cutoff)
	require.NoError(t, err)
	require.Len(t, holds, 1)
	assert.Equal(t, hold.ID, holds[0].ID)
}

func TestListReleasedWithoutPayout(t *testing.T) {
	repo, mock, cleanup := setupEscrowRepoTest(t)
	defer cleanup()

	releasedAt := time.Now().Add(-2 * time.Hour)
	hold := testHold(models.HoldStatusReleased)
	hold.ReleasedAmount = hold.Amount
	hold.ReleasedAt = &releasedAt

	mock.ExpectQuery("SELECT (.+) FROM escrow_holds").
		WithArgs(models.HoldStatusReleased, models.PayoutStatusFailed).
		WillReturnRows(holdRows(hold))

	holds, err := repo.ListReleasedWithoutPayout(context.Background())
	require.NoError(t, err)
	require.Len(t, holds, 1)
	assert.Equal(t, hold.ID, holds[0].ID)
	assert.Equal(t, hold.Amount, holds[0].ReleasedAmount)
}

func TestConsumeConfirmation(t *testing.T) {
	t.Run("first use succeeds", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		txnID := uuid.New()
		mock.ExpectExec("UPDATE delivery_confirmations").
			WithArgs(sqlmock.AnyArg(), txnID, "A1B2C3D4").
			WillReturnResult(sqlmock.NewResult(0, 1))

		consumed, err := repo.ConsumeConfirmation(context.Background(), txnID, "A1B2C3D4")
		assert.NoError(t, err)
		assert.True(t, consumed)
	})

	t.Run("replay or wrong code is rejected", func(t *testing.T) {
		repo, mock, cleanup := setupEscrowRepoTest(t)
		defer cleanup()

		txnID := uuid.New()
		mock.ExpectExec("UPDATE delivery_confirmations").
			WithArgs(sqlmock.AnyArg(), txnID, "WRONG").
			WillReturnResult(sqlmock.NewResult(0, 0))

		consumed, err := repo.ConsumeConfirmation(context.Background(), txnID, "WRONG")
		assert.NoError(t, err)
		assert.False(t, consumed)
	})
}

func TestGetConfirmationByTransactionID(t *testing.T) {
	repo, mock, cleanup := setupEscrowRepoTest(t)
	defer cleanup()

	txnID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "transaction_id", "code", "confirmed", "confirmed_at", "created_at"}).
		AddRow(uuid.New(), txnID, "A1B2C3D4", false, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM delivery_confirmations").
		WithArgs(txnID).
		WillReturnRows(rows)

	conf, err := repo.GetConfirmationByTransactionID(context.Background(), txnID)
	require.NoError(t, err)
	assert.Equal(t, "A1B2C3D4", conf.Code)
	assert.False(t, conf.Confirmed)
}
