package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/utils"
	"github.com/rekberid/rekber/services/escrow"
)

// SweepHandler exposes the auto-release sweep to the scheduler service
type SweepHandler struct {
	escrowUC escrow.EscrowUC
}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler(escrowUC escrow.EscrowUC) *SweepHandler {
	return &SweepHandler{
		escrowUC: escrowUC,
	}
}

// SweepAutoRelease runs one sweep pass and reports the per-hold outcomes
func (h *SweepHandler) SweepAutoRelease(c echo.Context) error {
	results, err := h.escrowUC.SweepAutoRelease(c.Request().Context())
	if err != nil {
		logger.Error("Auto release sweep failed", logger.Err(err))
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sweep finished", results)
}
