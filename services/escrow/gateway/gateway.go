package gateway

import (
	"context"

	"github.com/rekberid/rekber/internal/pkg/models"
)

// PublishReleased forwards to the NATS gateway implementation
func (g *EscrowGW) PublishReleased(ctx context.Context, event *models.EscrowReleasedEvent) error {
	return g.natsGateway.PublishReleased(ctx, event)
}

// Transfer forwards to the payment gateway client
func (g *EscrowGW) Transfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
	return g.paymentClient.Transfer(ctx, req)
}

// RefundPayment forwards to the payment gateway client
func (g *EscrowGW) RefundPayment(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResult, error) {
	return g.paymentClient.RefundPayment(ctx, req)
}

// SubmitShippingProof forwards to the verification service client
func (g *EscrowGW) SubmitShippingProof(ctx context.Context, proof *models.ShippingProof) error {
	return g.verificationClient.SubmitProof(ctx, proof)
}
