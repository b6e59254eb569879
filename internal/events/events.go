package events

import "time"

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
)

// BookingCreated is published after seats were reserved and the booking stored.
type BookingCreated struct {
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	TravelID   string    `json:"travel_id"`
	Seats      int       `json:"seats"`
	TotalPrice float64   `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingCancelled is published after a booking reached its terminal state.
// SeatsRestored is false when the referenced travel option no longer existed,
// in which case the seats were not returned to the pool.
type BookingCancelled struct {
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	TravelID      string    `json:"travel_id"`
	Seats         int       `json:"seats"`
	SeatsRestored bool      `json:"seats_restored"`
	OccurredAt    time.Time `json:"occurred_at"`
}
