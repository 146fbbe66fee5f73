package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// MatchCommand orders the pipeline to match one supplier item.
// Attempt is incremented on every transient-failure retry.
// ForceNewProduct skips candidate scoring and creates a new product;
// the review queue sets it when an admin rejects all candidates.
type MatchCommand struct {
	SupplierItemID  int  `json:"supplierItemId"`
	Attempt         uint `json:"attempt"`
	ForceNewProduct bool `json:"forceNewProduct,omitempty"`
}

// AggregateReason is what triggered an aggregation event.
type AggregateReason string

// Aggregation trigger reasons.
const (
	ReasonLinked              AggregateReason = "linked"
	ReasonUnlinked            AggregateReason = "unlinked"
	ReasonPriceChanged        AggregateReason = "price_changed"
	ReasonAvailabilityChanged AggregateReason = "availability_changed"
)

// AggregateCommand orders recomputation of one product's derived fields.
type AggregateCommand struct {
	ProductID int             `json:"productId"`
	Reason    AggregateReason `json:"reason"`
	Attempt   uint            `json:"attempt"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Commander sends pipeline commands.
type Commander struct {
	matchSender     Sender
	aggregateSender Sender
}

// NewCommander returns new Commander using provided senders for match
// and aggregation commands.
func NewCommander(matchSender, aggregateSender Sender) Commander {
	return Commander{
		matchSender:     matchSender,
		aggregateSender: aggregateSender,
	}
}

// SendMatchCommand sends a match command for provided supplier item.
// Ingestion calls it whenever an item is created or changed; the pipeline
// calls it to re-enqueue rejected or retried items.
func (c Commander) SendMatchCommand(ctx context.Context, cmd MatchCommand) error {
	msg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal match command: %w", err)
	}

	return c.matchSender.Send(ctx, msg)
}

// SendAggregateCommand sends an aggregation event for provided product.
func (c Commander) SendAggregateCommand(ctx context.Context, cmd AggregateCommand) error {
	msg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal aggregate command: %w", err)
	}

	return c.aggregateSender.Send(ctx, msg)
}
