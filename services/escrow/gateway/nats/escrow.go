package nats

import (
	"context"
	"encoding/json"

	"github.com/rekberid/rekber/internal/pkg/constants"
	"github.com/rekberid/rekber/internal/pkg/models"
	natspkg "github.com/rekberid/rekber/internal/pkg/nats"
)

// NATSGateway implements the NATS gateway operations for the escrow service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishReleased publishes an escrow released event to NATS
func (g *NATSGateway) PublishReleased(ctx context.Context, event *models.EscrowReleasedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(constants.SubjectEscrowReleased, data)
}
