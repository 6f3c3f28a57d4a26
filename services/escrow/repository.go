package escrow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rekberid/rekber/services/escrow EscrowRepo

// EscrowRepo represents the escrow repository interface. State transitions are
// conditional writes; the boolean result reports whether this caller won the
// transition (false means another writer got there first).
type EscrowRepo interface {
	// transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	GetTransactionByExternalRef(ctx context.Context, externalRef string) (*models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, id uuid.UUID, from, to models.TransactionStatus) (bool, error)

	// holds
	CreateHoldWithConfirmation(ctx context.Context, hold *models.EscrowHold, confirmation *models.DeliveryConfirmation) error
	GetHoldByID(ctx context.Context, id uuid.UUID) (*models.EscrowHold, error)
	GetHoldByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.EscrowHold, error)
	SettleHold(ctx context.Context, holdID uuid.UUID, from, to models.HoldStatus, releasedAmount, refundedAmount int64) (bool, error)
	MarkHoldDisputed(ctx context.Context, holdID uuid.UUID) (bool, error)
	SetHoldShipped(ctx context.Context, holdID uuid.UUID, shippedAt time.Time) (bool, error)
	SetHoldRefundRef(ctx context.Context, holdID uuid.UUID, refundRef string) error
	ListAutoReleasable(ctx context.Context, cutoff time.Time) ([]*models.EscrowHold, error)
	ListReleasedWithoutPayout(ctx context.Context) ([]*models.EscrowHold, error)
	ListHoldsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*models.EscrowHold, error)

	// delivery confirmations
	GetConfirmationByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.DeliveryConfirmation, error)
	ConsumeConfirmation(ctx context.Context, transactionID uuid.UUID, code string) (bool, error)

	// disputes
	CreateDispute(ctx context.Context, dispute *models.Dispute) error
	GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, disputeID uuid.UUID, resolution models.DisputeResolution, partialAmount *int64) (bool, error)

	// payouts
	CreatePayoutRecord(ctx context.Context, payout *models.PayoutRecord) error
	GetPayoutByIdempotencyKey(ctx context.Context, key string) (*models.PayoutRecord, error)
	MarkPayoutSucceeded(ctx context.Context, id uuid.UUID, externalRef string) error
	MarkPayoutFailed(ctx context.Context, id uuid.UUID, reason string) error
	ListPayoutsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*models.PayoutRecord, error)
}
