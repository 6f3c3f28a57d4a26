package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rekberid/rekber/internal/pkg/constants"
	"github.com/rekberid/rekber/internal/pkg/logger"
	"github.com/rekberid/rekber/internal/pkg/models"
	natspkg "github.com/rekberid/rekber/internal/pkg/nats"
	"github.com/rekberid/rekber/services/escrow"
)

// PayoutHandler consumes escrow released events and drives the payout
// executor. The queue group ensures each event lands on exactly one instance;
// the executor's idempotency key makes redeliveries safe anyway.
type PayoutHandler struct {
	escrowUC   escrow.EscrowUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewPayoutHandler creates a new payout NATS handler
func NewPayoutHandler(escrowUC escrow.EscrowUC, client *natspkg.Client) *PayoutHandler {
	return &PayoutHandler{
		escrowUC:   escrowUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers initializes all NATS consumers for the escrow service
func (h *PayoutHandler) InitConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectEscrowReleased, constants.QueuePayoutExecutor, func(msg *nats.Msg) {
		if err := h.handleReleasedEvent(msg.Data); err != nil {
			logger.ErrorCtx(context.Background(), "Error handling escrow released event",
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to escrow released events: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleReleasedEvent processes one escrow released event
func (h *PayoutHandler) handleReleasedEvent(msg []byte) error {
	var event models.EscrowReleasedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal escrow released event: %w", err)
	}

	return h.escrowUC.ExecutePayout(context.Background(), &event)
}

// Drain unsubscribes all consumers; in-flight handlers finish first
func (h *PayoutHandler) Drain() {
	for _, sub := range h.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain NATS subscription",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
}
