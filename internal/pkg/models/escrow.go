package models

import (
	"time"

	"github.com/google/uuid"
)

// HoldStatus represents the lifecycle state of an escrow hold
type HoldStatus string

const (
	HoldStatusPending  HoldStatus = "pending"
	HoldStatusHeld     HoldStatus = "held"
	HoldStatusReleased HoldStatus = "released"
	HoldStatusRefunded HoldStatus = "refunded"
	HoldStatusDisputed HoldStatus = "disputed"
)

// IsTerminal reports whether no further transition is allowed from the status
func (s HoldStatus) IsTerminal() bool {
	return s == HoldStatusReleased || s == HoldStatusRefunded
}

// ReleaseTrigger identifies which caller won a release transition
type ReleaseTrigger string

const (
	TriggerBuyerConfirmation ReleaseTrigger = "buyer_confirmation"
	TriggerAutoRelease       ReleaseTrigger = "auto_release"
	TriggerDisputeResolution ReleaseTrigger = "dispute_resolution"
	TriggerManualAdmin       ReleaseTrigger = "manual_admin"
)

// EscrowHold is the money-custody record, exactly one per completed transaction.
// ReleasedAmount and RefundedAmount record how the original amount was split on
// settlement; their sum never exceeds Amount.
type EscrowHold struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	TransactionID  uuid.UUID  `json:"transaction_id" db:"transaction_id"`
	ListingID      uuid.UUID  `json:"listing_id" db:"listing_id"`
	SellerID       uuid.UUID  `json:"seller_id" db:"seller_id"`
	Amount         int64      `json:"amount" db:"amount"`
	Currency       string     `json:"currency" db:"currency"`
	Status         HoldStatus `json:"status" db:"status"`
	ReleasedAmount int64      `json:"released_amount" db:"released_amount"`
	RefundedAmount int64      `json:"refunded_amount" db:"refunded_amount"`
	RefundRef      *string    `json:"refund_ref,omitempty" db:"refund_ref"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty" db:"shipped_at"`
	ReleasedAt     *time.Time `json:"released_at,omitempty" db:"released_at"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty" db:"refunded_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// DeliveryConfirmation carries the single-use code a buyer presents to release
// the paired hold. Consumed at most once.
type DeliveryConfirmation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"`
	Code          string     `json:"code" db:"code"`
	Confirmed     bool       `json:"confirmed" db:"confirmed"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty" db:"confirmed_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// LockRequest asks the engine to place a completed transaction into escrow
type LockRequest struct {
	TransactionID string `json:"transaction_id"`
}

// LockResult is returned to the caller after a successful lock
type LockResult struct {
	HoldID           uuid.UUID `json:"hold_id"`
	ConfirmationCode string    `json:"confirmation_code"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
}

// ReleaseRequest triggers a release by hold id or transaction id
type ReleaseRequest struct {
	HoldID        string `json:"hold_id"`
	TransactionID string `json:"transaction_id"`
}

// RefundRequest triggers a refund by hold id or transaction id
type HoldRefundRequest struct {
	HoldID        string `json:"hold_id"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
}

// SettlementResult reports the outcome of a release or refund transition.
// NoOp is true when the hold was already settled the way the caller asked,
// which is a success for idempotent retries, not an error.
type SettlementResult struct {
	HoldID         uuid.UUID  `json:"hold_id"`
	Status         HoldStatus `json:"status"`
	ReleasedAmount int64      `json:"released_amount"`
	RefundedAmount int64      `json:"refunded_amount"`
	NoOp           bool       `json:"no_op"`
}

// ConfirmDeliveryRequest consumes a buyer's confirmation code
type ConfirmDeliveryRequest struct {
	TransactionID string `json:"transaction_id"`
	Code          string `json:"code"`
}

// ShippingProofRequest records the courier handoff for a held transaction
type ShippingProofRequest struct {
	TransactionID string `json:"transaction_id"`
	ProofURL      string `json:"proof_url"`
}

// ShippingProof is forwarded to the verification service for advisory scoring
type ShippingProof struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	HoldID        uuid.UUID `json:"hold_id"`
	ProofURL      string    `json:"proof_url"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// SweepOutcome classifies the per-hold result of an auto-release sweep run
type SweepOutcome string

const (
	SweepOutcomeReleased       SweepOutcome = "released"
	SweepOutcomeNoOp           SweepOutcome = "no_op"
	SweepOutcomeFailed         SweepOutcome = "failed"
	SweepOutcomePayoutRedriven SweepOutcome = "payout_redriven"
)

// SweepResult is one entry of the per-hold result list a sweep returns;
// a failure for one hold never aborts the rest of the sweep.
type SweepResult struct {
	HoldID  uuid.UUID    `json:"hold_id"`
	Outcome SweepOutcome `json:"outcome"`
	Amount  int64        `json:"amount"`
	Error   string       `json:"error,omitempty"`
}
