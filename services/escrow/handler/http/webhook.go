package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/utils"
	"github.com/rekberid/rekber/services/escrow"
)

// SignatureHeader carries the gateway's HMAC over the raw webhook body
const SignatureHeader = "X-Signature"

// WebhookHandler handles signed payment gateway callbacks
type WebhookHandler struct {
	escrowUC escrow.EscrowUC
	secret   string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(escrowUC escrow.EscrowUC, cfg models.GatewayConfig) *WebhookHandler {
	return &WebhookHandler{
		escrowUC: escrowUC,
		secret:   cfg.WebhookSecret,
	}
}

// HandlePaymentWebhook verifies the callback signature before any state is
// touched. An unverified payload is rejected with no ledger effect.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	if !h.verifySignature(body, c.Request().Header.Get(SignatureHeader)) {
		logger.Warn("Rejected payment webhook with bad signature",
			logger.String("remote_ip", c.RealIP()))
		return utils.UnauthorizedResponse(c, "Invalid webhook signature")
	}

	var callback models.PaymentCallback
	if err := json.Unmarshal(body, &callback); err != nil {
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}

	if err := h.escrowUC.HandlePaymentCallback(c.Request().Context(), &callback); err != nil {
		logger.Warn("Failed to apply payment callback",
			logger.String("external_ref", callback.ExternalRef),
			logger.String("gateway_status", callback.Status),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Callback processed", nil)
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if h.secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
