package models

import (
	"time"

	"github.com/google/uuid"
)

// PayoutStatus represents the state of one money movement out of a seller's
// available balance
type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusSucceeded PayoutStatus = "succeeded"
	PayoutStatusFailed    PayoutStatus = "failed"
)

// PayoutRecord is an append-only log entry of a transfer attempt. Failed
// attempts are recorded rather than deleted so the ledger stays auditable;
// the derived wallet balance excludes them.
type PayoutRecord struct {
	ID             uuid.UUID    `json:"id" db:"id"`
	SellerID       uuid.UUID    `json:"seller_id" db:"seller_id"`
	HoldID         *uuid.UUID   `json:"hold_id,omitempty" db:"hold_id"`
	Amount         int64        `json:"amount" db:"amount"`
	Currency       string       `json:"currency" db:"currency"`
	Status         PayoutStatus `json:"status" db:"status"`
	IdempotencyKey string       `json:"idempotency_key" db:"idempotency_key"`
	ExternalRef    *string      `json:"external_ref,omitempty" db:"external_ref"`
	FailureReason  *string      `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`
}

// WithdrawRequest asks for a manual transfer from the seller's available
// balance. The idempotency key makes retries safe against double transfers.
type WithdrawRequest struct {
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}
