package models

import "time"

// BookingStatus has a single one-way transition: Confirmed -> Cancelled.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

// Booking is a user's reservation of N seats on a travel option. TravelOption
// is a value snapshot frozen at booking time: later price or seat changes on
// the live option never alter a past booking. TotalPrice is Seats x Price at
// booking time.
type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	TravelOption TravelOption  `json:"travelOption"`
	Seats        int           `json:"seats"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       BookingStatus `json:"status"`
	BookingTime  time.Time     `json:"bookingTime"`
}
