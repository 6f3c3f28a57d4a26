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

// WalletHandler handles HTTP requests for seller wallet operations
type WalletHandler struct {
	escrowUC escrow.EscrowUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(escrowUC escrow.EscrowUC) *WalletHandler {
	return &WalletHandler{
		escrowUC: escrowUC,
	}
}

// sellerFromContext reads the authenticated seller from the JWT middleware
func sellerFromContext(c echo.Context) (uuid.UUID, bool) {
	sellerID, ok := c.Get("user_id").(uuid.UUID)
	return sellerID, ok
}

// GetWallet handles derived wallet balance requests
func (h *WalletHandler) GetWallet(c echo.Context) error {
	sellerID, ok := sellerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing seller identity")
	}

	wallet, err := h.escrowUC.GetWallet(c.Request().Context(), sellerID)
	if err != nil {
		logger.Error("Failed to compute wallet balance",
			logger.String("seller_id", sellerID.String()),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet balance retrieved", wallet)
}

// Withdraw handles manual withdrawal requests from the available balance
func (h *WalletHandler) Withdraw(c echo.Context) error {
	sellerID, ok := sellerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing seller identity")
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.escrowUC.Withdraw(c.Request().Context(), sellerID, &req)
	if err != nil {
		logger.Warn("Withdrawal failed",
			logger.String("seller_id", sellerID.String()),
			logger.Int64("amount", req.Amount),
			logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal executed", record)
}
