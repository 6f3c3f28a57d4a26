package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletBalance is the derived view of a seller's money buckets, recomputed
// from hold and payout history on every read. Never stored as authoritative
// state; the snapshot is best-effort against concurrent writers.
type WalletBalance struct {
	SellerID     uuid.UUID `json:"seller_id"`
	Pending      int64     `json:"pending"`
	Available    int64     `json:"available"`
	Refunded     int64     `json:"refunded"`
	Paid         int64     `json:"paid"`
	Currency     string    `json:"currency"`
	CalculatedAt time.Time `json:"calculated_at"`
}
