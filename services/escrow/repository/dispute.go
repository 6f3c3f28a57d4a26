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

// CreateDispute inserts a new dispute record
func (r *EscrowRepo) CreateDispute(ctx context.Context, dispute *models.Dispute) error {
	if dispute.ID == uuid.Nil {
		dispute.ID = uuid.New()
	}
	dispute.CreatedAt = time.Now()

	query := `
		INSERT INTO disputes (id, transaction_id, hold_id, reason, evidence,
			resolution, partial_amount, created_at
		) VALUES (:id, :transaction_id, :hold_id, :reason, :evidence,
			:resolution, :partial_amount, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, dispute)
	if err != nil {
		return fmt.Errorf("failed to insert dispute: %w", err)
	}

	return nil
}

// GetDisputeByID retrieves a dispute by its id
func (r *EscrowRepo) GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	query := `
		SELECT id, transaction_id, hold_id, reason, evidence, resolution,
			partial_amount, created_at, resolved_at
		FROM disputes
		WHERE id = $1
	`

	var dispute models.Dispute
	err := r.db.GetContext(ctx, &dispute, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}

	return &dispute, nil
}

// ResolveDispute applies a terminal decision with a conditional write; only
// the first resolver of a pending dispute gets true.
func (r *EscrowRepo) ResolveDispute(ctx context.Context, disputeID uuid.UUID, resolution models.DisputeResolution, partialAmount *int64) (bool, error) {
	query := `
		UPDATE disputes
		SET resolution = $1, partial_amount = $2, resolved_at = $3
		WHERE id = $4 AND resolution = $5
	`

	result, err := r.db.ExecContext(ctx, query, resolution, partialAmount, time.Now(), disputeID, models.ResolutionPending)
	if err != nil {
		return false, fmt.Errorf("failed to resolve dispute: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}
