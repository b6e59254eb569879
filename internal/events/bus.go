package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"travely/internal/metrics"
	"travely/internal/utils"
)

// Bus is the in-process event bus. The whole system runs in a single process,
// so the gochannel pub/sub stands in for an external broker; consumers update
// metrics and write the audit log without slowing down the request path.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
}

func NewBus() (*Bus, error) {
	logger := watermill.NewStdLogger(false, false)

	pubsub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("create event router: %w", err)
	}

	router.AddNoPublisherHandler(
		"booking_created_audit",
		TopicBookingCreated,
		pubsub,
		func(msg *message.Message) error {
			var ev BookingCreated
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				return err
			}
			metrics.BookingsCreated.Inc()
			metrics.SeatsBooked.Add(float64(ev.Seats))
			utils.LogEvent("", "events", "booking_created",
				fmt.Sprintf("booking_id=%s user_id=%s travel_id=%s seats=%d", ev.BookingID, ev.UserID, ev.TravelID, ev.Seats))
			return nil
		},
	)

	router.AddNoPublisherHandler(
		"booking_cancelled_audit",
		TopicBookingCancelled,
		pubsub,
		func(msg *message.Message) error {
			var ev BookingCancelled
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				return err
			}
			metrics.BookingsCancelled.Inc()
			if ev.SeatsRestored {
				metrics.SeatsReleased.Add(float64(ev.Seats))
			}
			utils.LogEvent("", "events", "booking_cancelled",
				fmt.Sprintf("booking_id=%s user_id=%s restored=%t", ev.BookingID, ev.UserID, ev.SeatsRestored))
			return nil
		},
	)

	return &Bus{pubsub: pubsub, router: router}, nil
}

// Run blocks consuming events until the context is cancelled.
func (b *Bus) Run(ctx context.Context) error {
	return b.router.Run(ctx)
}

// Running returns a channel closed once the router consumes messages.
func (b *Bus) Running() chan struct{} {
	return b.router.Running()
}

func (b *Bus) Close() error {
	if err := b.router.Close(); err != nil {
		return err
	}
	return b.pubsub.Close()
}

// PublishBookingCreated never fails the calling operation; publish errors are
// logged and swallowed.
func (b *Bus) PublishBookingCreated(ctx context.Context, ev BookingCreated) {
	b.publish(ctx, TopicBookingCreated, ev)
}

func (b *Bus) PublishBookingCancelled(ctx context.Context, ev BookingCancelled) {
	b.publish(ctx, TopicBookingCancelled, ev)
}

func (b *Bus) publish(ctx context.Context, topic string, ev any) {
	payload, err := json.Marshal(ev)
	if err != nil {
		utils.LogWarn("", "events", "marshal", fmt.Sprintf("topic=%s err=%v", topic, err))
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		utils.LogWarn("", "events", "publish", fmt.Sprintf("topic=%s err=%v", topic, err))
	}
}
