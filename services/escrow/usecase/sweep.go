package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// SweepAutoRelease force-releases held holds whose shipping timestamp is
// older than the auto-release window, then re-executes payouts for released
// holds the executor never recorded. Each hold is handled independently and
// through the same conditional release, so a re-run or a racing buyer
// confirmation degrades to a no-op, never a double settlement.
func (u *EscrowUC) SweepAutoRelease(ctx context.Context) ([]models.SweepResult, error) {
	window := time.Duration(u.cfg.Escrow.AutoReleaseWindowHours) * time.Hour
	cutoff := time.Now().Add(-window)

	holds, err := u.repo.ListAutoReleasable(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	results := make([]models.SweepResult, 0, len(holds))
	for _, hold := range holds {
		result := models.SweepResult{HoldID: hold.ID, Amount: hold.Amount}

		settlement, err := u.release(ctx, hold, models.TriggerAutoRelease)
		switch {
		case err != nil && errors.Is(err, models.ErrAlreadyTerminal):
			result.Outcome = models.SweepOutcomeNoOp
		case err != nil:
			result.Outcome = models.SweepOutcomeFailed
			result.Error = err.Error()
			logger.ErrorCtx(ctx, "Auto release failed for hold",
				logger.String("hold_id", hold.ID.String()),
				logger.Err(err))
		case settlement.NoOp:
			result.Outcome = models.SweepOutcomeNoOp
		default:
			result.Outcome = models.SweepOutcomeReleased
		}

		results = append(results, result)
	}

	results = append(results, u.redrivePayouts(ctx)...)

	logger.InfoCtx(ctx, "Auto release sweep finished",
		logger.Int("eligible", len(holds)),
		logger.Int("results", len(results)))

	return results, nil
}

// redrivePayouts re-executes payouts for released holds that never got a
// non-failed payout record, typically because the released event was lost in
// flight. The hold-derived idempotency key makes a racing consumer harmless.
func (u *EscrowUC) redrivePayouts(ctx context.Context) []models.SweepResult {
	holds, err := u.repo.ListReleasedWithoutPayout(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list released holds without payout", logger.Err(err))
		return nil
	}

	results := make([]models.SweepResult, 0, len(holds))
	for _, hold := range holds {
		result := models.SweepResult{HoldID: hold.ID, Amount: hold.ReleasedAmount}

		event := &models.EscrowReleasedEvent{
			HoldID:   hold.ID,
			SellerID: hold.SellerID,
			Amount:   hold.ReleasedAmount,
			Currency: hold.Currency,
			Trigger:  models.TriggerAutoRelease,
		}
		if hold.ReleasedAt != nil {
			event.ReleasedAt = *hold.ReleasedAt
		} else {
			event.ReleasedAt = time.Now()
		}

		if err := u.ExecutePayout(ctx, event); err != nil {
			result.Outcome = models.SweepOutcomeFailed
			result.Error = err.Error()
			logger.ErrorCtx(ctx, "Payout re-drive failed for hold",
				logger.String("hold_id", hold.ID.String()),
				logger.Err(err))
		} else {
			result.Outcome = models.SweepOutcomePayoutRedriven
		}

		results = append(results, result)
	}

	return results
}

// RunSweepLoop drives the sweep on a fixed interval until the context is
// cancelled. Wired from main when ESCROW_SWEEP_INTERVAL_MINUTES is positive.
func (u *EscrowUC) RunSweepLoop(ctx context.Context) {
	interval := time.Duration(u.cfg.Escrow.SweepIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Auto release sweep loop started",
		logger.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Auto release sweep loop stopped")
			return
		case <-ticker.C:
			if _, err := u.SweepAutoRelease(ctx); err != nil {
				logger.Error("Auto release sweep run failed", logger.Err(err))
			}
		}
	}
}
