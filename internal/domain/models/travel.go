package models

import "time"

// TravelType distinguishes the kinds of bookable trips.
type TravelType string

const (
	TravelFlight TravelType = "Flight"
	TravelTrain  TravelType = "Train"
	TravelBus    TravelType = "Bus"
)

// TravelOption is a single bookable trip instance with fixed schedule, price
// and seat capacity. TotalSeats is immutable after creation; AvailableSeats is
// the mutable inventory counter and must stay within [0, TotalSeats].
type TravelOption struct {
	ID                 string     `json:"id"`
	Type               TravelType `json:"type"`
	Source             string     `json:"source"`
	Destination        string     `json:"destination"`
	DepartureTime      time.Time  `json:"departureTime"`
	ArrivalTime        time.Time  `json:"arrivalTime"`
	Price              float64    `json:"price"`
	TotalSeats         int        `json:"totalSeats"`
	AvailableSeats     int        `json:"availableSeats"`
	Operator           string     `json:"operator"`
	OperatorLogo       string     `json:"operatorLogo"`
	SeatType           string     `json:"seatType"`
	BaggageAllowance   string     `json:"baggageAllowance"`
	CancellationPolicy string     `json:"cancellationPolicy"`
}
