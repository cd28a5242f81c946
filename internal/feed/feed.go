// Package feed is the in-process pub/sub carrying per-stage order
// status events to the presentation layer. It runs on a Watermill
// gochannel Pub/Sub: no broker, nothing persisted, events only reach
// subscribers attached before publication.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"github.com/ManabBehera342/biztab-order-validation/internal/model"
)

// TopicOrderStatus carries one StageEvent per completed pipeline stage.
const TopicOrderStatus = "order-status"

// MetadataOrderID is the message metadata key holding the order id.
const MetadataOrderID = "order_id"

// StageEvent is the wire form of a stage outcome.
type StageEvent struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"order_id"`
	Result      model.StageResult `json:"result"`
	PublishedAt time.Time         `json:"published_at"`
}

// Feed wraps the gochannel Pub/Sub.
type Feed struct {
	pubsub *gochannel.GoChannel
}

// New creates a Feed with a buffered output channel per subscriber.
func New(logger watermill.LoggerAdapter) *Feed {
	return &Feed{
		pubsub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger),
	}
}

// PublishStage emits one stage outcome for the given order.
func (f *Feed) PublishStage(orderID string, res model.StageResult) error {
	ev := StageEvent{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		Result:      res,
		PublishedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal stage event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(MetadataOrderID, orderID)
	if err := f.pubsub.Publish(TopicOrderStatus, msg); err != nil {
		return fmt.Errorf("publish stage event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of stage events. The subscription ends
// when ctx is canceled.
func (f *Feed) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return f.pubsub.Subscribe(ctx, TopicOrderStatus)
}

// Close shuts the Pub/Sub down and closes all subscriber channels.
func (f *Feed) Close() error {
	return f.pubsub.Close()
}
