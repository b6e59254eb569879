package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated counts successfully confirmed bookings.
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travely",
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		},
	)

	// BookingsCancelled counts bookings flipped to their terminal state.
	BookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travely",
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		},
	)

	// SeatsBooked counts seats removed from the available pool.
	SeatsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travely",
			Name:      "seats_booked_total",
			Help:      "The total number of seats reserved by bookings",
		},
	)

	// SeatsReleased counts seats returned to the pool by cancellations.
	SeatsReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "travely",
			Name:      "seats_released_total",
			Help:      "The total number of seats restored by cancellations",
		},
	)

	// BookingFailures counts rejected booking attempts by reason.
	BookingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travely",
			Name:      "booking_failures_total",
			Help:      "The total number of rejected booking attempts",
		},
		[]string{"reason"},
	)
)
