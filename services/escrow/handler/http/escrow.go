package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/utils"
	"github.com/rekberid/rekber/services/escrow"
)

// EscrowHandler handles HTTP requests for escrow settlement operations
type EscrowHandler struct {
	escrowUC escrow.EscrowUC
}

// NewEscrowHandler creates a new escrow handler
func NewEscrowHandler(escrowUC escrow.EscrowUC) *EscrowHandler {
	return &EscrowHandler{
		escrowUC: escrowUC,
	}
}

// RecordPayment handles new payment attempt requests
func (h *EscrowHandler) RecordPayment(c echo.Context) error {
	var req models.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	txn, err := h.escrowUC.RecordPayment(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to record payment",
			logger.String("listing_id", req.ListingID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment recorded", txn)
}

// GetTransaction handles transaction retrieval requests
func (h *EscrowHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.escrowUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", txn)
}

// LockFunds handles escrow lock requests for completed transactions
func (h *EscrowHandler) LockFunds(c echo.Context) error {
	var req models.LockRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.escrowUC.LockFunds(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to lock funds",
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Funds locked into escrow", result)
}

// GetHold handles escrow hold retrieval requests
func (h *EscrowHandler) GetHold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid hold ID")
	}

	hold, err := h.escrowUC.GetHold(c.Request().Context(), id)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Hold retrieved", hold)
}

// ReleaseFunds handles manual release requests from the admin service
func (h *EscrowHandler) ReleaseFunds(c echo.Context) error {
	var req models.ReleaseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.escrowUC.ReleaseFunds(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to release funds",
			logger.String("hold_id", req.HoldID),
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Funds released", result)
}

// RefundFunds handles manual refund requests from the admin service
func (h *EscrowHandler) RefundFunds(c echo.Context) error {
	var req models.HoldRefundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.escrowUC.RefundFunds(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to refund funds",
			logger.String("hold_id", req.HoldID),
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Funds refunded", result)
}

// ConfirmDelivery handles buyer delivery confirmations
func (h *EscrowHandler) ConfirmDelivery(c echo.Context) error {
	var req models.ConfirmDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.escrowUC.ConfirmDelivery(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to confirm delivery",
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery confirmed, funds released", result)
}

// SubmitShippingProof handles seller shipping proof submissions
func (h *EscrowHandler) SubmitShippingProof(c echo.Context) error {
	var req models.ShippingProofRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.escrowUC.SubmitShippingProof(c.Request().Context(), &req); err != nil {
		logger.Warn("Failed to submit shipping proof",
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Shipping proof recorded", nil)
}
