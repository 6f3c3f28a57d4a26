package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the state of one buyer payment attempt
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction represents one buyer payment attempt against one listing.
// Immutable once terminal except for the status flip during refund.
type Transaction struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	ListingID     uuid.UUID         `json:"listing_id" db:"listing_id"`
	SellerID      uuid.UUID         `json:"seller_id" db:"seller_id"`
	BuyerContact  string            `json:"buyer_contact" db:"buyer_contact"`
	Amount        int64             `json:"amount" db:"amount"`
	Currency      string            `json:"currency" db:"currency"`
	PaymentMethod string            `json:"payment_method" db:"payment_method"`
	ExternalRef   string            `json:"external_ref" db:"external_ref"`
	Status        TransactionStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// RecordPaymentRequest records a new payment attempt for a listing
type RecordPaymentRequest struct {
	ListingID     string `json:"listing_id"`
	SellerID      string `json:"seller_id"`
	BuyerContact  string `json:"buyer_contact"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	PaymentMethod string `json:"payment_method"`
}

// PaymentCallback is the parsed body of the signed gateway webhook. Raw
// payloads are rejected at the boundary unless their signature verifies.
type PaymentCallback struct {
	ExternalRef string `json:"external_ref"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}
