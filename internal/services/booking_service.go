package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"

	"travely/internal/domain"
	"travely/internal/domain/models"
	"travely/internal/events"
	"travely/internal/metrics"
	"travely/internal/repositories"
	"travely/internal/utils"
)

// BookingService owns the travel catalog reads and the booking lifecycle.
// Now and NewID are injectable for tests and default to the real thing.
type BookingService struct {
	Store     *repositories.Store
	Bus       *events.Bus
	Now       func() time.Time
	NewID     func() string
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	// keeps the BKxxx convention of the seeded data
	return "BK" + strings.ToUpper(shortuuid.New())
}

// ListTravelOptions returns the whole catalog, unfiltered. Filtering stays a
// client concern.
func (s BookingService) ListTravelOptions(ctx context.Context) ([]models.TravelOption, error) {
	_ = ctx
	return s.Store.ListTravelOptions(), nil
}

// GetTravelOption resolves one option by exact id.
func (s BookingService) GetTravelOption(ctx context.Context, travelID string) (models.TravelOption, error) {
	_ = ctx
	return s.Store.GetTravelOption(travelID)
}

// ListBookings returns the user's bookings, most recent first. A blank user id
// yields an empty list rather than an error.
func (s BookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	_ = ctx
	bookings := s.Store.ListBookings(userID)
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingTime.After(bookings[j].BookingTime)
	})
	return bookings, nil
}

// CreateBooking reserves seats and records the booking. The availability check
// and the decrement happen atomically in the store, so concurrent requests can
// never oversell an option. The stored booking carries a snapshot of the
// option as of booking time.
func (s BookingService) CreateBooking(ctx context.Context, userID, travelID string, seats int) (models.Booking, error) {
	if utils.TrimOrEmpty(userID) == "" {
		metrics.BookingFailures.WithLabelValues("unauthenticated").Inc()
		return models.Booking{}, domain.UnauthenticatedError{Msg: "user must be logged in to book"}
	}
	if seats < 1 {
		metrics.BookingFailures.WithLabelValues("invalid_seats").Inc()
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "must be a positive number"}
	}

	snapshot, err := s.Store.ReserveSeats(travelID, seats)
	if err != nil {
		switch {
		case domain.IsSeatsUnavailable(err):
			metrics.BookingFailures.WithLabelValues("seats_unavailable").Inc()
		case domain.IsNotFound(err):
			metrics.BookingFailures.WithLabelValues("travel_not_found").Inc()
		}
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:           s.newID(),
		UserID:       userID,
		TravelOption: snapshot,
		Seats:        seats,
		TotalPrice:   float64(seats) * snapshot.Price,
		Status:       models.BookingConfirmed,
		BookingTime:  s.now(),
	}
	s.Store.AppendBooking(booking)

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s user_id=%s travel_id=%s seats=%d", booking.ID, userID, travelID, seats))

	if s.Bus != nil {
		s.Bus.PublishBookingCreated(ctx, events.BookingCreated{
			BookingID:  booking.ID,
			UserID:     userID,
			TravelID:   travelID,
			Seats:      seats,
			TotalPrice: booking.TotalPrice,
			OccurredAt: booking.BookingTime,
		})
	}

	return booking, nil
}

// GetBooking resolves a booking by id, case-insensitively.
func (s BookingService) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	_ = ctx
	return s.Store.GetBooking(bookingID)
}

// CancelBooking flips the booking to Cancelled and restores its seats to the
// live option. When the option record has disappeared the booking is still
// cancelled and the seats stay lost; the legacy system behaved this way and
// the behavior is preserved, logged at warn level.
func (s BookingService) CancelBooking(ctx context.Context, bookingID, userID string) (models.Booking, error) {
	booking, restored, err := s.Store.CancelBooking(bookingID, userID)
	if err != nil {
		return models.Booking{}, err
	}
	if !restored {
		utils.LogWarn(s.RequestID, "booking", "cancel",
			fmt.Sprintf("travel option %s missing, seats not restored for booking %s", booking.TravelOption.ID, booking.ID))
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%s user_id=%s restored=%t", booking.ID, userID, restored))

	if s.Bus != nil {
		s.Bus.PublishBookingCancelled(ctx, events.BookingCancelled{
			BookingID:     booking.ID,
			UserID:        userID,
			TravelID:      booking.TravelOption.ID,
			Seats:         booking.Seats,
			SeatsRestored: restored,
			OccurredAt:    s.now(),
		})
	}

	return booking, nil
}
