package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/utils"
)

// settleAttempts bounds the conditional-write loop when the hold status moves
// under us (held -> disputed while we read).
const settleAttempts = 3

// LockFunds places a completed transaction into escrow. Idempotent: a second
// lock of the same transaction returns the existing hold and code while it is
// still held, and ErrAlreadyLocked once the hold moved on.
func (u *EscrowUC) LockFunds(ctx context.Context, req *models.LockRequest) (*models.LockResult, error) {
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction_id: %w", models.ErrValidation)
	}

	txn, err := u.repo.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != models.TransactionStatusCompleted {
		return nil, fmt.Errorf("transaction is %s, only completed transactions can be locked: %w",
			txn.Status, models.ErrValidation)
	}

	existing, err := u.repo.GetHoldByTransactionID(ctx, transactionID)
	if err == nil {
		return u.existingLockResult(ctx, existing)
	}

	code, err := utils.GenerateRandomString(u.cfg.Escrow.ConfirmationCodeLen)
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation code: %w", err)
	}

	hold := &models.EscrowHold{
		TransactionID: txn.ID,
		ListingID:     txn.ListingID,
		SellerID:      txn.SellerID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Status:        models.HoldStatusHeld,
	}
	confirmation := &models.DeliveryConfirmation{
		TransactionID: txn.ID,
		Code:          code,
	}

	if err := u.repo.CreateHoldWithConfirmation(ctx, hold, confirmation); err != nil {
		// A concurrent lock may have won the unique transaction_id constraint.
		if existing, getErr := u.repo.GetHoldByTransactionID(ctx, transactionID); getErr == nil {
			return u.existingLockResult(ctx, existing)
		}
		return nil, fmt.Errorf("failed to create escrow hold: %w", err)
	}

	logger.InfoCtx(ctx, "Funds locked into escrow",
		logger.String("hold_id", hold.ID.String()),
		logger.String("transaction_id", txn.ID.String()),
		logger.Int64("amount", hold.Amount))

	return &models.LockResult{
		HoldID:           hold.ID,
		ConfirmationCode: code,
		Amount:           hold.Amount,
		Currency:         hold.Currency,
	}, nil
}

func (u *EscrowUC) existingLockResult(ctx context.Context, hold *models.EscrowHold) (*models.LockResult, error) {
	if hold.Status != models.HoldStatusHeld {
		return nil, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrAlreadyLocked)
	}

	conf, err := u.repo.GetConfirmationByTransactionID(ctx, hold.TransactionID)
	if err != nil {
		return nil, err
	}

	return &models.LockResult{
		HoldID:           hold.ID,
		ConfirmationCode: conf.Code,
		Amount:           hold.Amount,
		Currency:         hold.Currency,
	}, nil
}

// GetHold retrieves an escrow hold by id
func (u *EscrowUC) GetHold(ctx context.Context, holdID uuid.UUID) (*models.EscrowHold, error) {
	return u.repo.GetHoldByID(ctx, holdID)
}

// ReleaseFunds releases a hold to the seller on an admin trigger
func (u *EscrowUC) ReleaseFunds(ctx context.Context, req *models.ReleaseRequest) (*models.SettlementResult, error) {
	hold, err := u.resolveHold(ctx, req.HoldID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	return u.release(ctx, hold, models.TriggerManualAdmin)
}

// RefundFunds refunds a hold to the buyer on an admin trigger
func (u *EscrowUC) RefundFunds(ctx context.Context, req *models.HoldRefundRequest) (*models.SettlementResult, error) {
	hold, err := u.resolveHold(ctx, req.HoldID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	return u.refund(ctx, hold, req.Reason)
}

// ConfirmDelivery consumes the buyer's single-use confirmation code and
// releases the paired hold
func (u *EscrowUC) ConfirmDelivery(ctx context.Context, req *models.ConfirmDeliveryRequest) (*models.SettlementResult, error) {
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction_id: %w", models.ErrValidation)
	}
	if req.Code == "" {
		return nil, fmt.Errorf("code is required: %w", models.ErrValidation)
	}

	hold, err := u.repo.GetHoldByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	consumed, err := u.repo.ConsumeConfirmation(ctx, transactionID, req.Code)
	if err != nil {
		return nil, err
	}
	if !consumed {
		conf, err := u.repo.GetConfirmationByTransactionID(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if conf.Confirmed {
			return nil, models.ErrAlreadyConfirmed
		}
		return nil, fmt.Errorf("confirmation code does not match: %w", models.ErrValidation)
	}

	return u.release(ctx, hold, models.TriggerBuyerConfirmation)
}

// SubmitShippingProof stamps the courier handoff on the held hold and forwards
// the proof for advisory verification. Verification never blocks settlement.
func (u *EscrowUC) SubmitShippingProof(ctx context.Context, req *models.ShippingProofRequest) error {
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return fmt.Errorf("transaction_id: %w", models.ErrValidation)
	}
	if req.ProofURL == "" {
		return fmt.Errorf("proof_url is required: %w", models.ErrValidation)
	}

	hold, err := u.repo.GetHoldByTransactionID(ctx, transactionID)
	if err != nil {
		return err
	}
	if hold.Status.IsTerminal() {
		return fmt.Errorf("hold is %s: %w", hold.Status, models.ErrAlreadyTerminal)
	}

	now := time.Now()
	stamped, err := u.repo.SetHoldShipped(ctx, hold.ID, now)
	if err != nil {
		return err
	}
	if !stamped {
		// First proof wins the auto-release clock; later ones are advisory only.
		logger.DebugCtx(ctx, "Shipping timestamp already set",
			logger.String("hold_id", hold.ID.String()))
	}

	proof := &models.ShippingProof{
		TransactionID: transactionID,
		HoldID:        hold.ID,
		ProofURL:      req.ProofURL,
		SubmittedAt:   now,
	}

	go func() {
		verifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := u.gw.SubmitShippingProof(verifyCtx, proof); err != nil {
			logger.Warn("Shipping proof verification submit failed",
				logger.String("hold_id", proof.HoldID.String()),
				logger.Err(err))
		}
	}()

	return nil
}

// resolveHold finds a hold by hold id or transaction id, whichever is given
func (u *EscrowUC) resolveHold(ctx context.Context, holdID, transactionID string) (*models.EscrowHold, error) {
	if holdID != "" {
		id, err := uuid.Parse(holdID)
		if err != nil {
			return nil, fmt.Errorf("hold_id: %w", models.ErrValidation)
		}
		return u.repo.GetHoldByID(ctx, id)
	}
	if transactionID != "" {
		id, err := uuid.Parse(transactionID)
		if err != nil {
			return nil, fmt.Errorf("transaction_id: %w", models.ErrValidation)
		}
		return u.repo.GetHoldByTransactionID(ctx, id)
	}
	return nil, fmt.Errorf("hold_id or transaction_id is required: %w", models.ErrValidation)
}

// release moves a hold to released with a conditional write. Exactly one
// caller wins the transition and publishes the payout event; racers that
// asked for the same outcome get an idempotent no-op.
func (u *EscrowUC) release(ctx context.Context, hold *models.EscrowHold, trigger models.ReleaseTrigger) (*models.SettlementResult, error) {
	for attempt := 0; attempt < settleAttempts; attempt++ {
		switch hold.Status {
		case models.HoldStatusReleased:
			return &models.SettlementResult{
				HoldID:         hold.ID,
				Status:         hold.Status,
				ReleasedAmount: hold.ReleasedAmount,
				RefundedAmount: hold.RefundedAmount,
				NoOp:           true,
			}, nil
		case models.HoldStatusRefunded:
			return nil, fmt.Errorf("hold already refunded: %w", models.ErrAlreadyTerminal)
		case models.HoldStatusHeld, models.HoldStatusDisputed:
			// transitionable
		default:
			return nil, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrValidation)
		}

		won, err := u.repo.SettleHold(ctx, hold.ID, hold.Status, models.HoldStatusReleased, hold.Amount, 0)
		if err != nil {
			return nil, err
		}
		if won {
			u.publishReleased(ctx, hold, hold.Amount, trigger)
			return &models.SettlementResult{
				HoldID:         hold.ID,
				Status:         models.HoldStatusReleased,
				ReleasedAmount: hold.Amount,
			}, nil
		}

		// Lost the conditional write; re-read and decide from the new status.
		hold, err = u.repo.GetHoldByID(ctx, hold.ID)
		if err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("hold %s kept moving during release: %w", hold.ID, models.ErrAlreadyTerminal)
}

// refund moves a hold to refunded with a conditional write, then drives the
// gateway refund. The transition commits first so a racing release can never
// double-settle; a gateway failure leaves refund_ref NULL, and the next
// refund call for the hold re-drives the gateway with the same key.
func (u *EscrowUC) refund(ctx context.Context, hold *models.EscrowHold, reason string) (*models.SettlementResult, error) {
	for attempt := 0; attempt < settleAttempts; attempt++ {
		switch hold.Status {
		case models.HoldStatusRefunded:
			u.redriveRefund(ctx, hold, reason)
			return &models.SettlementResult{
				HoldID:         hold.ID,
				Status:         hold.Status,
				ReleasedAmount: hold.ReleasedAmount,
				RefundedAmount: hold.RefundedAmount,
				NoOp:           true,
			}, nil
		case models.HoldStatusReleased:
			return nil, fmt.Errorf("hold already released: %w", models.ErrAlreadyTerminal)
		case models.HoldStatusHeld, models.HoldStatusDisputed:
			// transitionable
		default:
			return nil, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrValidation)
		}

		won, err := u.repo.SettleHold(ctx, hold.ID, hold.Status, models.HoldStatusRefunded, 0, hold.Amount)
		if err != nil {
			return nil, err
		}
		if won {
			u.finishRefund(ctx, hold, hold.Amount, reason, true)
			return &models.SettlementResult{
				HoldID:         hold.ID,
				Status:         models.HoldStatusRefunded,
				RefundedAmount: hold.Amount,
			}, nil
		}

		hold, err = u.repo.GetHoldByID(ctx, hold.ID)
		if err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("hold %s kept moving during refund: %w", hold.ID, models.ErrAlreadyTerminal)
}

// publishReleased emits the payout job for a winning release. Publish failure
// is logged, not returned: the ledger transition already happened and the
// payout can be re-driven.
func (u *EscrowUC) publishReleased(ctx context.Context, hold *models.EscrowHold, amount int64, trigger models.ReleaseTrigger) {
	event := &models.EscrowReleasedEvent{
		HoldID:     hold.ID,
		SellerID:   hold.SellerID,
		Amount:     amount,
		Currency:   hold.Currency,
		Trigger:    trigger,
		ReleasedAt: time.Now(),
	}

	if err := u.gw.PublishReleased(ctx, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish escrow released event",
			logger.String("hold_id", hold.ID.String()),
			logger.String("trigger", string(trigger)),
			logger.Err(err))
		return
	}

	logger.InfoCtx(ctx, "Escrow released",
		logger.String("hold_id", hold.ID.String()),
		logger.String("trigger", string(trigger)),
		logger.Int64("amount", amount))
}

// redriveRefund re-runs the gateway leg of a refund whose transition already
// committed but never got a refund_ref. The idempotency key is derived from
// the transaction, so the gateway dedups against a first attempt that did get
// through.
func (u *EscrowUC) redriveRefund(ctx context.Context, hold *models.EscrowHold, reason string) {
	if hold.RefundRef != nil || hold.RefundedAmount <= 0 {
		return
	}

	logger.InfoCtx(ctx, "Re-driving gateway refund for hold without refund_ref",
		logger.String("hold_id", hold.ID.String()),
		logger.Int64("amount", hold.RefundedAmount))

	u.finishRefund(ctx, hold, hold.RefundedAmount, reason, hold.RefundedAmount == hold.Amount)
}

// finishRefund flips the transaction and drives the gateway refund after the
// refund transition committed. fullRefund controls the transaction status
// flip; partial splits keep the transaction completed.
func (u *EscrowUC) finishRefund(ctx context.Context, hold *models.EscrowHold, amount int64, reason string, fullRefund bool) {
	if fullRefund {
		if _, err := u.repo.UpdateTransactionStatus(ctx, hold.TransactionID,
			models.TransactionStatusCompleted, models.TransactionStatusRefunded); err != nil {
			logger.ErrorCtx(ctx, "Failed to flip transaction to refunded",
				logger.String("transaction_id", hold.TransactionID.String()),
				logger.Err(err))
		}
	}

	txn, err := u.repo.GetTransactionByID(ctx, hold.TransactionID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to load transaction for gateway refund",
			logger.String("transaction_id", hold.TransactionID.String()),
			logger.Err(err))
		return
	}

	result, err := u.gw.RefundPayment(ctx, &models.GatewayRefundRequest{
		ExternalRef:    txn.ExternalRef,
		Amount:         amount,
		Currency:       hold.Currency,
		Reason:         reason,
		IdempotencyKey: "refund-" + hold.TransactionID.String(),
	})
	if err != nil {
		// refund_ref stays NULL; the refund is re-driveable with the same key.
		logger.WarnCtx(ctx, "Gateway refund failed, will need re-drive",
			logger.String("hold_id", hold.ID.String()),
			logger.Err(err))
		return
	}

	if err := u.repo.SetHoldRefundRef(ctx, hold.ID, result.ExternalRef); err != nil {
		logger.ErrorCtx(ctx, "Failed to record refund reference",
			logger.String("hold_id", hold.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Escrow refunded",
		logger.String("hold_id", hold.ID.String()),
		logger.Int64("amount", amount),
		logger.String("refund_ref", result.ExternalRef))
}
