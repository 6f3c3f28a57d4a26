package escrow

import (
	"context"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rekberid/rekber/services/escrow EscrowUC

// EscrowUC represents the escrow settlement usecase interface
type EscrowUC interface {
	// payment intake
	RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.Transaction, error)
	HandlePaymentCallback(ctx context.Context, callback *models.PaymentCallback) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)

	// hold lifecycle
	LockFunds(ctx context.Context, req *models.LockRequest) (*models.LockResult, error)
	GetHold(ctx context.Context, holdID uuid.UUID) (*models.EscrowHold, error)
	ReleaseFunds(ctx context.Context, req *models.ReleaseRequest) (*models.SettlementResult, error)
	RefundFunds(ctx context.Context, req *models.HoldRefundRequest) (*models.SettlementResult, error)
	ConfirmDelivery(ctx context.Context, req *models.ConfirmDeliveryRequest) (*models.SettlementResult, error)
	SubmitShippingProof(ctx context.Context, req *models.ShippingProofRequest) error

	// disputes
	CreateDispute(ctx context.Context, req *models.CreateDisputeRequest) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, req *models.ResolveDisputeRequest) (*models.SettlementResult, error)

	// auto release
	SweepAutoRelease(ctx context.Context) ([]models.SweepResult, error)

	// payouts and wallet
	ExecutePayout(ctx context.Context, event *models.EscrowReleasedEvent) error
	Withdraw(ctx context.Context, sellerID uuid.UUID, req *models.WithdrawRequest) (*models.PayoutRecord, error)
	GetWallet(ctx context.Context, sellerID uuid.UUID) (*models.WalletBalance, error)
}
