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

// CreateTransaction inserts a new payment transaction
func (r *EscrowRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, listing_id, seller_id, buyer_contact, amount,
			currency, payment_method, external_ref, status, created_at, updated_at
		) VALUES (:id, :listing_id, :seller_id, :buyer_contact, :amount,
			:currency, :payment_method, :external_ref, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by its id
func (r *EscrowRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, listing_id, seller_id, buyer_contact, amount, currency,
			payment_method, external_ref, status, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// GetTransactionByExternalRef retrieves a transaction by the gateway reference
func (r *EscrowRepo) GetTransactionByExternalRef(ctx context.Context, externalRef string) (*models.Transaction, error) {
	query := `
		SELECT id, listing_id, seller_id, buyer_contact, amount, currency,
			payment_method, external_ref, status, created_at, updated_at
		FROM transactions
		WHERE external_ref = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, externalRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by external ref: %w", err)
	}

	return &txn, nil
}

// UpdateTransactionStatus flips the transaction status only when the current
// status still matches. Returns false when another writer already moved it.
func (r *EscrowRepo) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}
