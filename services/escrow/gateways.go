package escrow

import (
	"context"

	"github.com/rekberid/rekber/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/rekberid/rekber/services/escrow EscrowGW

// EscrowGW defines the escrow gateway interface
type EscrowGW interface {
	// NATS Gateway
	PublishReleased(ctx context.Context, event *models.EscrowReleasedEvent) error

	// Payment gateway HTTP
	Transfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error)
	RefundPayment(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResult, error)

	// Verification service HTTP
	SubmitShippingProof(ctx context.Context, proof *models.ShippingProof) error
}
