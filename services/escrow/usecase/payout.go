package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// ExecutePayout moves released funds to the seller, exactly once per
// idempotency key. A succeeded record short-circuits; a pending record is
// re-driven with the same key so an earlier crash or timeout converges; the
// gateway deduplicates on its side via the Idempotency-Key header.
func (u *EscrowUC) ExecutePayout(ctx context.Context, event *models.EscrowReleasedEvent) error {
	if event.Amount <= 0 {
		// A fully-refunded split releases nothing; there is no payout to run.
		return nil
	}

	key := event.IdempotencyKey()

	record, err := u.repo.GetPayoutByIdempotencyKey(ctx, key)
	switch {
	case err == nil:
		if record.Status == models.PayoutStatusSucceeded {
			logger.DebugCtx(ctx, "Payout already executed, skipping",
				logger.String("idempotency_key", key))
			return nil
		}
		// pending: an earlier attempt died mid-flight; drive it to a terminal state
	case errors.Is(err, models.ErrNotFound):
		record = &models.PayoutRecord{
			SellerID:       event.SellerID,
			HoldID:         &event.HoldID,
			Amount:         event.Amount,
			Currency:       event.Currency,
			Status:         models.PayoutStatusPending,
			IdempotencyKey: key,
		}
		if err := u.repo.CreatePayoutRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to create payout record: %w", err)
		}
	default:
		return err
	}

	return u.driveTransfer(ctx, record)
}

// Withdraw runs a manual transfer from the seller's derived available
// balance with the caller-supplied idempotency key.
func (u *EscrowUC) Withdraw(ctx context.Context, sellerID uuid.UUID, req *models.WithdrawRequest) (*models.PayoutRecord, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", models.ErrInvalidAmount)
	}
	if req.IdempotencyKey == "" {
		return nil, fmt.Errorf("idempotency_key is required: %w", models.ErrValidation)
	}

	existing, err := u.repo.GetPayoutByIdempotencyKey(ctx, req.IdempotencyKey)
	if err == nil {
		if existing.SellerID != sellerID {
			return nil, fmt.Errorf("idempotency key belongs to another seller: %w", models.ErrValidation)
		}
		if existing.Status == models.PayoutStatusSucceeded {
			return existing, nil
		}
		// pending record from an earlier ambiguous attempt; re-drive it
		if err := u.driveTransfer(ctx, existing); err != nil {
			return existing, err
		}
		return u.repo.GetPayoutByIdempotencyKey(ctx, req.IdempotencyKey)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	// Pending attempts count against the balance: their outcome is unknown,
	// so the money they may still move is not withdrawable again.
	wallet, reserved, err := u.walletWithReserved(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if req.Amount > wallet.Available-reserved {
		return nil, fmt.Errorf("requested %d, withdrawable %d: %w",
			req.Amount, wallet.Available-reserved, models.ErrInsufficientBalance)
	}

	record := &models.PayoutRecord{
		SellerID:       sellerID,
		Amount:         req.Amount,
		Currency:       wallet.Currency,
		Status:         models.PayoutStatusPending,
		IdempotencyKey: req.IdempotencyKey,
	}
	if err := u.repo.CreatePayoutRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create payout record: %w", err)
	}

	if err := u.driveTransfer(ctx, record); err != nil {
		return record, err
	}
	return u.repo.GetPayoutByIdempotencyKey(ctx, req.IdempotencyKey)
}

// driveTransfer calls the gateway for a pending payout record and settles the
// record to succeeded or failed. A timeout keeps the record pending: the
// outcome is unknown, so only a retry with the same key may decide it.
func (u *EscrowUC) driveTransfer(ctx context.Context, record *models.PayoutRecord) error {
	var result *models.TransferResult

	err := u.retrier.Execute(ctx, func(ctx context.Context) error {
		var transferErr error
		result, transferErr = u.gw.Transfer(ctx, &models.TransferRequest{
			SellerID:       record.SellerID,
			Amount:         record.Amount,
			Currency:       record.Currency,
			IdempotencyKey: record.IdempotencyKey,
		})
		return transferErr
	})

	if err != nil {
		if errors.Is(err, models.ErrGatewayTimeout) {
			logger.WarnCtx(ctx, "Payout outcome ambiguous, record stays pending",
				logger.String("idempotency_key", record.IdempotencyKey),
				logger.Err(err))
			return err
		}

		if markErr := u.repo.MarkPayoutFailed(ctx, record.ID, err.Error()); markErr != nil {
			logger.ErrorCtx(ctx, "Failed to mark payout failed",
				logger.String("payout_id", record.ID.String()),
				logger.Err(markErr))
		}
		return err
	}

	if err := u.repo.MarkPayoutSucceeded(ctx, record.ID, result.ExternalRef); err != nil {
		return fmt.Errorf("transfer succeeded but record update failed: %w", err)
	}

	logger.InfoCtx(ctx, "Payout executed",
		logger.String("payout_id", record.ID.String()),
		logger.String("seller_id", record.SellerID.String()),
		logger.Int64("amount", record.Amount),
		logger.String("external_ref", result.ExternalRef))

	return nil
}
