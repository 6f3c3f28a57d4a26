package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rekberid/rekber/internal/pkg/circuitbreaker"
	httpclient "github.com/rekberid/rekber/internal/pkg/http"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// PaymentClient talks to the external payment gateway for transfers and
// refunds. Every mutating call carries an Idempotency-Key header so the
// gateway can deduplicate retries on its side too.
type PaymentClient struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewPaymentClient creates a new payment gateway client
func NewPaymentClient(cfg models.GatewayConfig, zapLogger *logger.ZapLogger) *PaymentClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &PaymentClient{
		client:  httpclient.NewClient("payment-gateway", cfg.URL, cfg.APIKey, timeout),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("payment-gateway"), zapLogger),
	}
}

type transferResponse struct {
	ExternalRef string `json:"external_ref"`
}

// Transfer moves released funds to the seller's account
func (c *PaymentClient) Transfer(ctx context.Context, req *models.TransferRequest) (*models.TransferResult, error) {
	headers := map[string]string{
		httpclient.IdempotencyKeyHeader: req.IdempotencyKey,
	}

	var resp transferResponse
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.PostJSON(ctx, "/transfers", req, headers, &resp)
	})
	if err != nil {
		return nil, classifyGatewayError("transfer", err)
	}

	return &models.TransferResult{ExternalRef: resp.ExternalRef}, nil
}

// RefundPayment reverses a buyer charge through the gateway
func (c *PaymentClient) RefundPayment(ctx context.Context, req *models.GatewayRefundRequest) (*models.GatewayRefundResult, error) {
	headers := map[string]string{
		httpclient.IdempotencyKeyHeader: req.IdempotencyKey,
	}

	var resp transferResponse
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.client.PostJSON(ctx, "/refunds", req, headers, &resp)
	})
	if err != nil {
		return nil, classifyGatewayError("refund", err)
	}

	return &models.GatewayRefundResult{ExternalRef: resp.ExternalRef}, nil
}

// classifyGatewayError separates ambiguous timeouts from definite failures.
// A timeout may have executed on the gateway side, so callers must retry with
// the same idempotency key instead of treating it as failed.
func classifyGatewayError(operation string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		logger.Warn("Payment gateway call timed out",
			logger.String("operation", operation),
			logger.Err(err))
		return fmt.Errorf("%s: %w", operation, models.ErrGatewayTimeout)
	}

	logger.Error("Payment gateway call failed",
		logger.String("operation", operation),
		logger.Err(err))
	return fmt.Errorf("%s: %w", operation, models.ErrExternalService)
}
