package http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/rekberid/rekber/internal/pkg/http"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// VerificationClient forwards shipping proofs to the verification service.
// Verification is advisory: its score never changes hold state, so callers
// treat failures as log-and-continue.
type VerificationClient struct {
	client *httpclient.Client
}

// NewVerificationClient creates a new verification service client
func NewVerificationClient(cfg models.GatewayConfig) *VerificationClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &VerificationClient{
		client: httpclient.NewClient("verification-service", cfg.VerificationURL, cfg.APIKey, timeout),
	}
}

// SubmitProof sends a shipping proof for advisory scoring
func (c *VerificationClient) SubmitProof(ctx context.Context, proof *models.ShippingProof) error {
	if err := c.client.PostJSON(ctx, "/proofs", proof, nil, nil); err != nil {
		return fmt.Errorf("submit shipping proof: %w", models.ErrExternalService)
	}
	return nil
}
