package usecase

import (
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	"github.com/rekberid/rekber/internal/pkg/retry"
	"github.com/rekberid/rekber/services/escrow"
)

// EscrowUC implements the escrow settlement usecase
type EscrowUC struct {
	cfg     *models.Config
	repo    escrow.EscrowRepo
	gw      escrow.EscrowGW
	retrier *retry.Retrier
}

// NewEscrowUC creates a new escrow usecase instance
func NewEscrowUC(
	cfg *models.Config,
	repo escrow.EscrowRepo,
	gw escrow.EscrowGW,
) *EscrowUC {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = func(err error) bool {
		// Timeouts are ambiguous but safe to retry: the gateway deduplicates
		// by idempotency key.
		return true
	}

	return &EscrowUC{
		cfg:     cfg,
		repo:    repo,
		gw:      gw,
		retrier: retry.New(retryConfig, logger.GetGlobalLogger()),
	}
}
