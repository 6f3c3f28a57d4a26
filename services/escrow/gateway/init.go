package gateway

import (
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	natspkg "github.com/rekberid/rekber/internal/pkg/nats"
	"github.com/rekberid/rekber/services/escrow"
	gateway_http "github.com/rekberid/rekber/services/escrow/gateway/http"
	gateway_nats "github.com/rekberid/rekber/services/escrow/gateway/nats"
)

// EscrowGW handles escrow gateway operations
type EscrowGW struct {
	natsGateway        *gateway_nats.NATSGateway
	paymentClient      *gateway_http.PaymentClient
	verificationClient *gateway_http.VerificationClient
}

// NewEscrowGW creates a new gateway instance with NATS and HTTP clients
func NewEscrowGW(natsClient *natspkg.Client, cfg models.GatewayConfig, zapLogger *logger.ZapLogger) escrow.EscrowGW {
	return &EscrowGW{
		natsGateway:        gateway_nats.NewNATSGateway(natsClient),
		paymentClient:      gateway_http.NewPaymentClient(cfg, zapLogger),
		verificationClient: gateway_http.NewVerificationClient(cfg),
	}
}
