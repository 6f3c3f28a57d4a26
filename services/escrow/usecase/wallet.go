package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// GetWallet folds the seller's hold and payout history into the four money
// buckets. Derived on every read; the ledger rows stay the only authority.
func (u *EscrowUC) GetWallet(ctx context.Context, sellerID uuid.UUID) (*models.WalletBalance, error) {
	wallet, _, err := u.walletWithReserved(ctx, sellerID)
	return wallet, err
}

// walletWithReserved additionally reports the amount tied up in pending
// payout attempts. Pending money is still Available in the projection (the
// transfer outcome is unknown), but a withdrawal must not spend it twice.
func (u *EscrowUC) walletWithReserved(ctx context.Context, sellerID uuid.UUID) (*models.WalletBalance, int64, error) {
	holds, err := u.repo.ListHoldsBySeller(ctx, sellerID)
	if err != nil {
		return nil, 0, err
	}
	payouts, err := u.repo.ListPayoutsBySeller(ctx, sellerID)
	if err != nil {
		return nil, 0, err
	}

	wallet := &models.WalletBalance{
		SellerID:     sellerID,
		Currency:     u.cfg.Escrow.DefaultCurrency,
		CalculatedAt: time.Now(),
	}

	for _, hold := range holds {
		if hold.Currency != "" {
			wallet.Currency = hold.Currency
		}
		switch hold.Status {
		case models.HoldStatusHeld, models.HoldStatusDisputed:
			wallet.Pending += hold.Amount
		case models.HoldStatusReleased, models.HoldStatusRefunded:
			wallet.Available += hold.ReleasedAmount
			wallet.Refunded += hold.RefundedAmount
		}
	}

	var reserved int64
	for _, payout := range payouts {
		switch payout.Status {
		case models.PayoutStatusSucceeded:
			wallet.Paid += payout.Amount
			wallet.Available -= payout.Amount
		case models.PayoutStatusPending:
			reserved += payout.Amount
		}
	}

	return wallet, reserved, nil
}
