package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversBookingCreated(t *testing.T) {
	bus, err := NewBus()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bus.Run(ctx) }()
	<-bus.Running()

	messages, err := bus.pubsub.Subscribe(ctx, TopicBookingCreated)
	require.NoError(t, err)

	published := BookingCreated{
		BookingID:  "BK900",
		UserID:     "alice",
		TravelID:   "F123",
		Seats:      2,
		TotalPrice: 700.0,
		OccurredAt: time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	bus.PublishBookingCreated(context.Background(), published)

	select {
	case msg := <-messages:
		var got BookingCreated
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, published, got)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("no booking.created event received")
	}

	cancel()
	require.NoError(t, bus.Close())
}

func TestBusDeliversBookingCancelled(t *testing.T) {
	bus, err := NewBus()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bus.Run(ctx) }()
	<-bus.Running()

	messages, err := bus.pubsub.Subscribe(ctx, TopicBookingCancelled)
	require.NoError(t, err)

	bus.PublishBookingCancelled(context.Background(), BookingCancelled{
		BookingID:     "BK901",
		UserID:        "alice",
		TravelID:      "GONE",
		Seats:         1,
		SeatsRestored: false,
		OccurredAt:    time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
	})

	select {
	case msg := <-messages:
		var got BookingCancelled
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.False(t, got.SeatsRestored)
		assert.Equal(t, "BK901", got.BookingID)
		msg.Ack()
	case <-time.After(5 * time.Second):
		t.Fatal("no booking.cancelled event received")
	}

	cancel()
	require.NoError(t, bus.Close())
}
