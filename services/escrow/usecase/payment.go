package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
)

// RecordPayment records a new buyer payment attempt against a listing. The
// transaction starts pending; the gateway webhook moves it to completed or
// failed.
func (u *EscrowUC) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.Transaction, error) {
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, fmt.Errorf("listing_id: %w", models.ErrValidation)
	}
	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		return nil, fmt.Errorf("seller_id: %w", models.ErrValidation)
	}
	if req.BuyerContact == "" {
		return nil, fmt.Errorf("buyer_contact is required: %w", models.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", models.ErrInvalidAmount)
	}

	currency := req.Currency
	if currency == "" {
		currency = u.cfg.Escrow.DefaultCurrency
	}

	txn := &models.Transaction{
		ListingID:     listingID,
		SellerID:      sellerID,
		BuyerContact:  req.BuyerContact,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentMethod: req.PaymentMethod,
		ExternalRef:   uuid.NewString(),
		Status:        models.TransactionStatusPending,
	}

	if err := u.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	logger.InfoCtx(ctx, "Payment recorded",
		logger.String("transaction_id", txn.ID.String()),
		logger.String("external_ref", txn.ExternalRef),
		logger.Int64("amount", txn.Amount))

	return txn, nil
}

// GetTransaction retrieves a transaction by id
func (u *EscrowUC) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return u.repo.GetTransactionByID(ctx, id)
}

// HandlePaymentCallback applies a verified gateway callback. Completed
// payments flip the transaction and lock funds into escrow; replayed
// callbacks are idempotent because both writes are conditional.
func (u *EscrowUC) HandlePaymentCallback(ctx context.Context, callback *models.PaymentCallback) error {
	if callback.ExternalRef == "" {
		return fmt.Errorf("external_ref is required: %w", models.ErrValidation)
	}

	txn, err := u.repo.GetTransactionByExternalRef(ctx, callback.ExternalRef)
	if err != nil {
		return err
	}

	if callback.Amount != 0 && callback.Amount != txn.Amount {
		return fmt.Errorf("callback amount %d does not match transaction amount %d: %w",
			callback.Amount, txn.Amount, models.ErrValidation)
	}

	switch callback.Status {
	case "completed", "paid", "settlement":
		won, err := u.repo.UpdateTransactionStatus(ctx, txn.ID, models.TransactionStatusPending, models.TransactionStatusCompleted)
		if err != nil {
			return err
		}
		if !won && txn.Status != models.TransactionStatusCompleted {
			// Refresh; a lost race against anything but completion is a conflict.
			current, err := u.repo.GetTransactionByID(ctx, txn.ID)
			if err != nil {
				return err
			}
			if current.Status != models.TransactionStatusCompleted {
				return fmt.Errorf("transaction is %s: %w", current.Status, models.ErrAlreadyTerminal)
			}
		}

		// Lock is idempotent, so replayed callbacks land on the existing hold.
		if _, err := u.LockFunds(ctx, &models.LockRequest{TransactionID: txn.ID.String()}); err != nil {
			return fmt.Errorf("failed to lock funds after payment: %w", err)
		}
		return nil

	case "failed", "expired", "denied":
		if _, err := u.repo.UpdateTransactionStatus(ctx, txn.ID, models.TransactionStatusPending, models.TransactionStatusFailed); err != nil {
			return err
		}
		logger.WarnCtx(ctx, "Payment failed at gateway",
			logger.String("transaction_id", txn.ID.String()),
			logger.String("gateway_status", callback.Status))
		return nil

	default:
		return fmt.Errorf("unknown callback status %q: %w", callback.Status, models.ErrValidation)
	}
}
