package models

import (
	"time"

	"github.com/google/uuid"
)

// EscrowReleasedEvent is published exactly once per winning release
// transition and consumed by the payout executor.
type EscrowReleasedEvent struct {
	HoldID     uuid.UUID      `json:"hold_id"`
	SellerID   uuid.UUID      `json:"seller_id"`
	Amount     int64          `json:"amount"`
	Currency   string         `json:"currency"`
	Trigger    ReleaseTrigger `json:"trigger"`
	ReleasedAt time.Time      `json:"released_at"`
}

// IdempotencyKey derives the dedup key for the payout this event drives.
// One release produces one key, so replayed events can never cause a second
// transfer.
func (e *EscrowReleasedEvent) IdempotencyKey() string {
	return "release-" + e.HoldID.String()
}

// TransferRequest is sent to the payment gateway adapter to move released
// funds to the seller
type TransferRequest struct {
	SellerID       uuid.UUID `json:"seller_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// TransferResult carries the gateway's reference for a successful transfer
type TransferResult struct {
	ExternalRef string `json:"external_ref"`
}

// GatewayRefundRequest reverses a buyer charge through the gateway
type GatewayRefundRequest struct {
	ExternalRef    string `json:"external_ref"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Reason         string `json:"reason"`
	IdempotencyKey string `json:"idempotency_key"`
}

// GatewayRefundResult carries the gateway's reference for a refund
type GatewayRefundResult struct {
	ExternalRef string `json:"external_ref"`
}
