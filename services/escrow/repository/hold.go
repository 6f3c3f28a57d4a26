package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/models"
)

const holdColumns = `id, transaction_id, listing_id, seller_id, amount, currency,
		status, released_amount, refunded_amount, refund_ref,
		shipped_at, released_at, refunded_at, created_at, updated_at`

// CreateHoldWithConfirmation inserts a hold and its paired delivery
// confirmation code in one transaction. The unique constraint on
// escrow_holds.transaction_id makes a duplicate lock fail atomically.
func (r *EscrowRepo) CreateHoldWithConfirmation(ctx context.Context, hold *models.EscrowHold, confirmation *models.DeliveryConfirmation) error {
	if hold.ID == uuid.Nil {
		hold.ID = uuid.New()
	}
	if confirmation.ID == uuid.Nil {
		confirmation.ID = uuid.New()
	}
	now := time.Now()
	hold.CreatedAt = now
	hold.UpdatedAt = now
	confirmation.CreatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	holdQuery := `
		INSERT INTO escrow_holds (id, transaction_id, listing_id, seller_id, amount,
			currency, status, released_amount, refunded_amount, created_at, updated_at
		) VALUES (:id, :transaction_id, :listing_id, :seller_id, :amount,
			:currency, :status, :released_amount, :refunded_amount, :created_at, :updated_at)
	`
	_, err = tx.NamedExecContext(ctx, holdQuery, hold)
	if err != nil {
		return fmt.Errorf("failed to insert escrow hold: %w", err)
	}

	confQuery := `
		INSERT INTO delivery_confirmations (id, transaction_id, code, confirmed, created_at)
		VALUES (:id, :transaction_id, :code, :confirmed, :created_at)
	`
	_, err = tx.NamedExecContext(ctx, confQuery, confirmation)
	if err != nil {
		return fmt.Errorf("failed to insert delivery confirmation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetHoldByID retrieves an escrow hold by its id
func (r *EscrowRepo) GetHoldByID(ctx context.Context, id uuid.UUID) (*models.EscrowHold, error) {
	query := fmt.Sprintf(`SELECT %s FROM escrow_holds WHERE id = $1`, holdColumns)

	var hold models.EscrowHold
	err := r.db.GetContext(ctx, &hold, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get escrow hold: %w", err)
	}

	return &hold, nil
}

// GetHoldByTransactionID retrieves the hold paired with a transaction
func (r *EscrowRepo) GetHoldByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.EscrowHold, error) {
	query := fmt.Sprintf(`SELECT %s FROM escrow_holds WHERE transaction_id = $1`, holdColumns)

	var hold models.EscrowHold
	err := r.db.GetContext(ctx, &hold, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get escrow hold by transaction: %w", err)
	}

	return &hold, nil
}

// SettleHold moves a hold from one status to a terminal status with a
// conditional write. Only the caller whose UPDATE affects a row has settled
// the hold; everyone else lost the race and must treat it as a no-op.
// The settlement timestamp follows the terminal status, so released_at and
// refunded_at stay mutually exclusive even for partial splits.
func (r *EscrowRepo) SettleHold(ctx context.Context, holdID uuid.UUID, from, to models.HoldStatus, releasedAmount, refundedAmount int64) (bool, error) {
	if !to.IsTerminal() {
		return false, fmt.Errorf("settle target %q is not terminal", to)
	}

	timestampColumn := "released_at"
	if to == models.HoldStatusRefunded {
		timestampColumn = "refunded_at"
	}

	query := fmt.Sprintf(`
		UPDATE escrow_holds
		SET status = $1, released_amount = $2, refunded_amount = $3,
			%s = $4, updated_at = $4
		WHERE id = $5 AND status = $6
	`, timestampColumn)

	result, err := r.db.ExecContext(ctx, query, to, releasedAmount, refundedAmount, time.Now(), holdID, from)
	if err != nil {
		return false, fmt.Errorf("failed to settle escrow hold: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// MarkHoldDisputed pauses settlement on a held hold. Returns false when the
// hold is not in held status anymore.
func (r *EscrowRepo) MarkHoldDisputed(ctx context.Context, holdID uuid.UUID) (bool, error) {
	query := `
		UPDATE escrow_holds
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, models.HoldStatusDisputed, time.Now(), holdID, models.HoldStatusHeld)
	if err != nil {
		return false, fmt.Errorf("failed to mark hold disputed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// SetHoldShipped stamps the courier handoff time on a held hold. The shipped
// timestamp is written once; later proofs do not move the auto-release clock.
func (r *EscrowRepo) SetHoldShipped(ctx context.Context, holdID uuid.UUID, shippedAt time.Time) (bool, error) {
	query := `
		UPDATE escrow_holds
		SET shipped_at = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND shipped_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, shippedAt, time.Now(), holdID, models.HoldStatusHeld)
	if err != nil {
		return false, fmt.Errorf("failed to set hold shipped: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// SetHoldRefundRef records the gateway reference after a refund call succeeds
func (r *EscrowRepo) SetHoldRefundRef(ctx context.Context, holdID uuid.UUID, refundRef string) error {
	query := `
		UPDATE escrow_holds
		SET refund_ref = $1, updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refundRef, time.Now(), holdID)
	if err != nil {
		return fmt.Errorf("failed to set refund ref: %w", err)
	}

	return nil
}

// ListAutoReleasable returns held holds whose shipping timestamp is at or
// before the cutoff. Holds that were never shipped are not eligible.
func (r *EscrowRepo) ListAutoReleasable(ctx context.Context, cutoff time.Time) ([]*models.EscrowHold, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM escrow_holds
		WHERE status = $1 AND shipped_at IS NOT NULL AND shipped_at <= $2
		ORDER BY shipped_at ASC
	`, holdColumns)

	var holds []*models.EscrowHold
	err := r.db.SelectContext(ctx, &holds, query, models.HoldStatusHeld, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto releasable holds: %w", err)
	}

	return holds, nil
}

// ListReleasedWithoutPayout returns released holds whose payout never got a
// non-failed record, typically because the released event was lost before the
// executor saw it. The release-derived idempotency key makes re-executing
// them safe at any time.
func (r *EscrowRepo) ListReleasedWithoutPayout(ctx context.Context) ([]*models.EscrowHold, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM escrow_holds h
		WHERE h.status = $1 AND h.released_amount > 0
			AND NOT EXISTS (
				SELECT 1 FROM payout_records p
				WHERE p.hold_id = h.id AND p.status <> $2
			)
		ORDER BY h.released_at ASC
	`, holdColumns)

	var holds []*models.EscrowHold
	err := r.db.SelectContext(ctx, &holds, query, models.HoldStatusReleased, models.PayoutStatusFailed)
	if err != nil {
		return nil, fmt.Errorf("failed to list released holds without payout: %w", err)
	}

	return holds, nil
}

// ListHoldsBySeller returns all holds for a seller, newest first
func (r *EscrowRepo) ListHoldsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*models.EscrowHold, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM escrow_holds
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`, holdColumns)

	var holds []*models.EscrowHold
	err := r.db.SelectContext(ctx, &holds, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holds by seller: %w", err)
	}

	return holds, nil
}

// GetConfirmationByTransactionID retrieves the delivery confirmation paired
// with a transaction
func (r *EscrowRepo) GetConfirmationByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.DeliveryConfirmation, error) {
	query := `
		SELECT id, transaction_id, code, confirmed, confirmed_at, created_at
		FROM delivery_confirmations
		WHERE transaction_id = $1
	`

	var conf models.DeliveryConfirmation
	err := r.db.GetContext(ctx, &conf, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get delivery confirmation: %w", err)
	}

	return &conf, nil
}

// ConsumeConfirmation marks a confirmation code used. The conditional write
// makes the code single-use: only the first matching caller gets true.
func (r *EscrowRepo) ConsumeConfirmation(ctx context.Context, transactionID uuid.UUID, code string) (bool, error) {
	query := `
		UPDATE delivery_confirmations
		SET confirmed = TRUE, confirmed_at = $1
		WHERE transaction_id = $2 AND code = $3 AND confirmed = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), transactionID, code)
	if err != nil {
		return false, fmt.Errorf("failed to consume confirmation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}
