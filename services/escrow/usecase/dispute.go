package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// CreateDispute opens a dispute against a transaction and pauses the paired
// hold. Disputes filed after settlement are still recorded for audit, but the
// hold is not mutated and the caller is told the settlement already happened.
func (u *EscrowUC) CreateDispute(ctx context.Context, req *models.CreateDisputeRequest) (*models.Dispute, error) {
	transactionID, err := uuid.Parse(req.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("transaction_id: %w", models.ErrValidation)
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("reason is required: %w", models.ErrValidation)
	}

	hold, err := u.repo.GetHoldByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	dispute := &models.Dispute{
		TransactionID: transactionID,
		HoldID:        hold.ID,
		Reason:        req.Reason,
		Evidence:      req.Evidence,
		Resolution:    models.ResolutionPending,
	}
	if err := u.repo.CreateDispute(ctx, dispute); err != nil {
		return nil, fmt.Errorf("failed to create dispute: %w", err)
	}

	if hold.Status.IsTerminal() {
		logger.WarnCtx(ctx, "Dispute filed after settlement, recorded for audit only",
			logger.String("dispute_id", dispute.ID.String()),
			logger.String("hold_id", hold.ID.String()),
			logger.String("hold_status", string(hold.Status)))
		return dispute, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrAlreadyTerminal)
	}

	if hold.Status == models.HoldStatusHeld {
		won, err := u.repo.MarkHoldDisputed(ctx, hold.ID)
		if err != nil {
			return nil, err
		}
		if !won {
			// The lost writer may be another dispute, but it may just as
			// well be a settlement. Re-read and report which.
			hold, err = u.repo.GetHoldByID(ctx, hold.ID)
			if err != nil {
				return nil, err
			}
			if hold.Status.IsTerminal() {
				logger.WarnCtx(ctx, "Hold settled while dispute was being filed, recorded for audit only",
					logger.String("dispute_id", dispute.ID.String()),
					logger.String("hold_id", hold.ID.String()),
					logger.String("hold_status", string(hold.Status)))
				return dispute, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrAlreadyTerminal)
			}
		}
	}

	logger.InfoCtx(ctx, "Dispute created",
		logger.String("dispute_id", dispute.ID.String()),
		logger.String("hold_id", hold.ID.String()))

	return dispute, nil
}

// ResolveDispute applies a terminal decision to a dispute. Exactly one
// resolution wins the conditional write; everyone else gets
// ErrAlreadyResolved.
func (u *EscrowUC) ResolveDispute(ctx context.Context, req *models.ResolveDisputeRequest) (*models.SettlementResult, error) {
	disputeID, err := uuid.Parse(req.DisputeID)
	if err != nil {
		return nil, fmt.Errorf("dispute_id: %w", models.ErrValidation)
	}

	dispute, err := u.repo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Resolution != models.ResolutionPending {
		return nil, models.ErrAlreadyResolved
	}

	hold, err := u.repo.GetHoldByID(ctx, dispute.HoldID)
	if err != nil {
		return nil, err
	}

	switch req.Resolution {
	case models.ResolutionRefundBuyer, models.ResolutionPaySeller:
		// partial_amount is ignored for full resolutions
	case models.ResolutionPartialRefund:
		if req.PartialAmount == nil {
			return nil, fmt.Errorf("partial_amount is required for partial_refund: %w", models.ErrValidation)
		}
		if *req.PartialAmount <= 0 || *req.PartialAmount >= hold.Amount {
			return nil, fmt.Errorf("partial_amount must be within (0, %d): %w", hold.Amount, models.ErrInvalidAmount)
		}
	default:
		return nil, fmt.Errorf("unknown resolution %q: %w", req.Resolution, models.ErrValidation)
	}

	won, err := u.repo.ResolveDispute(ctx, disputeID, req.Resolution, req.PartialAmount)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, models.ErrAlreadyResolved
	}

	logger.InfoCtx(ctx, "Dispute resolved",
		logger.String("dispute_id", disputeID.String()),
		logger.String("resolution", string(req.Resolution)))

	switch req.Resolution {
	case models.ResolutionRefundBuyer:
		return u.refund(ctx, hold, "dispute resolved: refund buyer")
	case models.ResolutionPaySeller:
		return u.release(ctx, hold, models.TriggerDisputeResolution)
	default:
		return u.partialSettle(ctx, hold, *req.PartialAmount)
	}
}

// partialSettle splits a disputed hold: partialAmount back to the buyer, the
// remainder to the seller. The nominal terminal status follows the majority
// side, and only that side's settlement timestamp is set.
func (u *EscrowUC) partialSettle(ctx context.Context, hold *models.EscrowHold, partialAmount int64) (*models.SettlementResult, error) {
	releasedAmount := hold.Amount - partialAmount
	refundedAmount := partialAmount

	target := models.HoldStatusReleased
	if refundedAmount*2 >= hold.Amount {
		target = models.HoldStatusRefunded
	}

	for attempt := 0; attempt < settleAttempts; attempt++ {
		switch hold.Status {
		case models.HoldStatusReleased, models.HoldStatusRefunded:
			if hold.ReleasedAmount == releasedAmount && hold.RefundedAmount == refundedAmount {
				u.redriveRefund(ctx, hold, "dispute resolved: partial refund")
				return &models.SettlementResult{
					HoldID:         hold.ID,
					Status:         hold.Status,
					ReleasedAmount: hold.ReleasedAmount,
					RefundedAmount: hold.RefundedAmount,
					NoOp:           true,
				}, nil
			}
			return nil, fmt.Errorf("hold already settled as %s: %w", hold.Status, models.ErrAlreadyTerminal)
		case models.HoldStatusHeld, models.HoldStatusDisputed:
			// transitionable
		default:
			return nil, fmt.Errorf("hold is %s: %w", hold.Status, models.ErrValidation)
		}

		won, err := u.repo.SettleHold(ctx, hold.ID, hold.Status, target, releasedAmount, refundedAmount)
		if err != nil {
			return nil, err
		}
		if won {
			u.finishRefund(ctx, hold, refundedAmount, "dispute resolved: partial refund", false)
			u.publishReleased(ctx, hold, releasedAmount, models.TriggerDisputeResolution)

			return &models.SettlementResult{
				HoldID:         hold.ID,
				Status:         target,
				ReleasedAmount: releasedAmount,
				RefundedAmount: refundedAmount,
			}, nil
		}

		hold, err = u.repo.GetHoldByID(ctx, hold.ID)
		if err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("hold %s kept moving during partial settlement: %w", hold.ID, models.ErrAlreadyTerminal)
}
