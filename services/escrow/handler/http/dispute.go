package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/utils"
	"github.com/rekberid/rekber/services/escrow"
)

// DisputeHandler handles HTTP requests for dispute operations
type DisputeHandler struct {
	escrowUC escrow.EscrowUC
}

// NewDisputeHandler creates a new dispute handler
func NewDisputeHandler(escrowUC escrow.EscrowUC) *DisputeHandler {
	return &DisputeHandler{
		escrowUC: escrowUC,
	}
}

// CreateDispute handles buyer dispute submissions
func (h *DisputeHandler) CreateDispute(c echo.Context) error {
	var req models.CreateDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dispute, err := h.escrowUC.CreateDispute(c.Request().Context(), &req)
	if err != nil {
		// The dispute row exists even when the hold already settled; the
		// caller still gets a conflict so they know no money will move.
		if errors.Is(err, models.ErrAlreadyTerminal) && dispute != nil {
			return utils.ErrorResponseHandler(c, http.StatusConflict, err.Error())
		}
		logger.Warn("Failed to create dispute",
			logger.String("transaction_id", req.TransactionID),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Dispute created", dispute)
}

// ResolveDispute handles admin dispute resolutions
func (h *DisputeHandler) ResolveDispute(c echo.Context) error {
	var req models.ResolveDisputeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.escrowUC.ResolveDispute(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Failed to resolve dispute",
			logger.String("dispute_id", req.DisputeID),
			logger.String("resolution", string(req.Resolution)),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dispute resolved", result)
}
