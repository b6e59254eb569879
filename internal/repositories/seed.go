package repositories

import (
	"time"

	"travely/internal/domain/models"
)

// NewSeededStore builds a store pre-loaded with the demo catalog. The process
// is intentionally stateless across restarts; every boot starts from this data.
func NewSeededStore() *Store {
	return NewStore(seedTravelOptions(), seedBookings(), seedUsers())
}

func seedTravelOptions() []models.TravelOption {
	return []models.TravelOption{
		{
			ID:                 "F123",
			Type:               models.TravelFlight,
			Source:             "New York (JFK)",
			Destination:        "Los Angeles (LAX)",
			DepartureTime:      time.Date(2024, 9, 10, 9, 0, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 10, 12, 0, 0, 0, time.UTC),
			Price:              350.0,
			TotalSeats:         180,
			AvailableSeats:     120,
			Operator:           "Delta Airlines",
			OperatorLogo:       "https://picsum.photos/seed/delta/40/40",
			SeatType:           "Economy",
			BaggageAllowance:   "1 carry-on, 1 checked bag",
			CancellationPolicy: "Full refund 24h before departure.",
		},
		{
			ID:                 "T456",
			Type:               models.TravelTrain,
			Source:             "Washington D.C.",
			Destination:        "New York (PENN)",
			DepartureTime:      time.Date(2024, 9, 12, 14, 30, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 12, 18, 0, 0, 0, time.UTC),
			Price:              120.5,
			TotalSeats:         300,
			AvailableSeats:     85,
			Operator:           "Amtrak",
			OperatorLogo:       "https://picsum.photos/seed/amtrak/40/40",
			SeatType:           "Coach Class",
			BaggageAllowance:   "2 carry-ons, 2 personal items",
			CancellationPolicy: "Full refund 48h before departure.",
		},
		{
			ID:                 "B789",
			Type:               models.TravelBus,
			Source:             "Boston",
			Destination:        "New York (PABT)",
			DepartureTime:      time.Date(2024, 9, 11, 8, 0, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 11, 12, 30, 0, 0, time.UTC),
			Price:              45.0,
			TotalSeats:         50,
			AvailableSeats:     2,
			Operator:           "Greyhound",
			OperatorLogo:       "https://picsum.photos/seed/greyhound/40/40",
			SeatType:           "Standard Seat",
			BaggageAllowance:   "1 carry-on, 1 checked bag",
			CancellationPolicy: "Non-refundable.",
		},
		{
			ID:                 "F234",
			Type:               models.TravelFlight,
			Source:             "Chicago (ORD)",
			Destination:        "San Francisco (SFO)",
			DepartureTime:      time.Date(2024, 9, 15, 11, 0, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 15, 13, 30, 0, 0, time.UTC),
			Price:              410.0,
			TotalSeats:         220,
			AvailableSeats:     50,
			Operator:           "United Airlines",
			OperatorLogo:       "https://picsum.photos/seed/united/40/40",
			SeatType:           "Economy Plus",
			BaggageAllowance:   "1 carry-on",
			CancellationPolicy: "Fee applies for cancellations.",
		},
		{
			// sold out on purpose, keeps the "0 seats" path visible in demos
			ID:                 "F999",
			Type:               models.TravelFlight,
			Source:             "Miami (MIA)",
			Destination:        "Atlanta (ATL)",
			DepartureTime:      time.Date(2024, 9, 20, 18, 0, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 20, 20, 0, 0, 0, time.UTC),
			Price:              180.0,
			TotalSeats:         150,
			AvailableSeats:     0,
			Operator:           "Spirit Airlines",
			OperatorLogo:       "https://picsum.photos/seed/spirit/40/40",
			SeatType:           "Standard",
			BaggageAllowance:   "Charges for all bags",
			CancellationPolicy: "Non-refundable.",
		},
		{
			ID:                 "T567",
			Type:               models.TravelTrain,
			Source:             "Los Angeles (LAX)",
			Destination:        "San Diego",
			DepartureTime:      time.Date(2024, 9, 13, 10, 0, 0, 0, time.UTC),
			ArrivalTime:        time.Date(2024, 9, 13, 12, 45, 0, 0, time.UTC),
			Price:              35.0,
			TotalSeats:         250,
			AvailableSeats:     200,
			Operator:           "Pacific Surfliner",
			OperatorLogo:       "https://picsum.photos/seed/surfliner/40/40",
			SeatType:           "Business Class",
			BaggageAllowance:   "2 carry-ons",
			CancellationPolicy: "Full refund up to departure.",
		},
	}
}

func seedBookings() []models.Booking {
	options := seedTravelOptions()
	return []models.Booking{
		{
			ID:           "BK001",
			UserID:       "user123",
			TravelOption: options[1],
			Seats:        2,
			TotalPrice:   options[1].Price * 2,
			Status:       models.BookingConfirmed,
			BookingTime:  time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "BK002",
			UserID:       "alice",
			TravelOption: options[0],
			Seats:        1,
			TotalPrice:   options[0].Price,
			Status:       models.BookingConfirmed,
			BookingTime:  time.Date(2024, 7, 22, 15, 30, 0, 0, time.UTC),
		},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "user123", Name: "user123"},
		{ID: "alice", Name: "alice"},
	}
}
