package models

import (
	"time"

	"github.com/google/uuid"
)

// DisputeResolution is the terminal decision applied to a disputed hold
type DisputeResolution string

const (
	ResolutionPending       DisputeResolution = "pending"
	ResolutionRefundBuyer   DisputeResolution = "refund_buyer"
	ResolutionPaySeller     DisputeResolution = "pay_seller"
	ResolutionPartialRefund DisputeResolution = "partial_refund"
)

// Dispute pauses settlement of the paired hold until a resolution is applied.
// Disputes filed after settlement are kept for audit but never reopen money
// movement.
type Dispute struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"`
	HoldID        uuid.UUID         `json:"hold_id" db:"hold_id"`
	Reason        string            `json:"reason" db:"reason"`
	Evidence      string            `json:"evidence" db:"evidence"`
	Resolution    DisputeResolution `json:"resolution" db:"resolution"`
	PartialAmount *int64            `json:"partial_amount,omitempty" db:"partial_amount"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	ResolvedAt    *time.Time        `json:"resolved_at,omitempty" db:"resolved_at"`
}

// CreateDisputeRequest opens a dispute against a transaction
type CreateDisputeRequest struct {
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason"`
	Evidence      string `json:"evidence"`
}

// ResolveDisputeRequest applies a terminal decision to a dispute.
// PartialAmount is required for partial_refund and ignored otherwise.
type ResolveDisputeRequest struct {
	DisputeID     string            `json:"dispute_id"`
	Resolution    DisputeResolution `json:"resolution"`
	PartialAmount *int64            `json:"partial_amount,omitempty"`
}
