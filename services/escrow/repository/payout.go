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

// CreatePayoutRecord inserts a pending payout attempt. The partial unique
// index on idempotency_key (excluding failed rows) rejects a concurrent
// duplicate for the same key.
func (r *EscrowRepo) CreatePayoutRecord(ctx context.Context, payout *models.PayoutRecord) error {
	if payout.ID == uuid.Nil {
		payout.ID = uuid.New()
	}
	now := time.Now()
	payout.CreatedAt = now
	payout.UpdatedAt = now

	query := `
		INSERT INTO payout_records (id, seller_id, hold_id, amount, currency,
			status, idempotency_key, external_ref, failure_reason, created_at, updated_at
		) VALUES (:id, :seller_id, :hold_id, :amount, :currency,
			:status, :idempotency_key, :external_ref, :failure_reason, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, payout)
	if err != nil {
		return fmt.Errorf("failed to insert payout record: %w", err)
	}

	return nil
}

// GetPayoutByIdempotencyKey retrieves the most recent non-failed payout for a
// key. Failed attempts do not block a retry, so they are excluded here.
func (r *EscrowRepo) GetPayoutByIdempotencyKey(ctx context.Context, key string) (*models.PayoutRecord, error) {
	query := `
		SELECT id, seller_id, hold_id, amount, currency, status,
			idempotency_key, external_ref, failure_reason, created_at, updated_at
		FROM payout_records
		WHERE idempotency_key = $1 AND status <> $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payout models.PayoutRecord
	err := r.db.GetContext(ctx, &payout, query, key, models.PayoutStatusFailed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payout by idempotency key: %w", err)
	}

	return &payout, nil
}

// MarkPayoutSucceeded records the gateway reference for a completed transfer
func (r *EscrowRepo) MarkPayoutSucceeded(ctx context.Context, id uuid.UUID, externalRef string) error {
	query := `
		UPDATE payout_records
		SET status = $1, external_ref = $2, updated_at = $3
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, models.PayoutStatusSucceeded, externalRef, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark payout succeeded: %w", err)
	}

	return nil
}

// MarkPayoutFailed records a definite gateway failure for audit
func (r *EscrowRepo) MarkPayoutFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE payout_records
		SET status = $1, failure_reason = $2, updated_at = $3
		WHERE id = $4
	`

	_, err := r.db.ExecContext(ctx, query, models.PayoutStatusFailed, reason, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark payout failed: %w", err)
	}

	return nil
}

// ListPayoutsBySeller returns all payout attempts for a seller, newest first
func (r *EscrowRepo) ListPayoutsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*models.PayoutRecord, error) {
	query := `
		SELECT id, seller_id, hold_id, amount, currency, status,
			idempotency_key, external_ref, failure_reason, created_at, updated_at
		FROM payout_records
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`

	var payouts []*models.PayoutRecord
	err := r.db.SelectContext(ctx, &payouts, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts by seller: %w", err)
	}

	return payouts, nil
}
