package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"travely/internal/domain"
	"travely/internal/domain/models"
	"travely/internal/repositories"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

func newBookingService() BookingService {
	seq := 0
	return BookingService{
		Store: repositories.NewSeededStore(),
		Now:   func() time.Time { return fixedNow },
		NewID: func() string {
			seq++
			return fmt.Sprintf("BKTEST%03d", seq)
		},
	}
}

func TestListTravelOptionsReturnsDefensiveCopy(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	options, err := svc.ListTravelOptions(ctx)
	require.NoError(t, err)
	require.Len(t, options, 6)

	options[0].AvailableSeats = -999

	fresh, err := svc.ListTravelOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, fresh[0].AvailableSeats)
}

func TestGetTravelOptionIsCaseSensitive(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	option, err := svc.GetTravelOption(ctx, "F123")
	require.NoError(t, err)
	assert.Equal(t, models.TravelFlight, option.Type)

	_, err = svc.GetTravelOption(ctx, "f123")
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateAndCancelRoundTrip(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "user123", "F123", 3)
	require.NoError(t, err)
	assert.InDelta(t, 1050.00, booking.TotalPrice, 0.001)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, fixedNow, booking.BookingTime)
	assert.Equal(t, 117, booking.TravelOption.AvailableSeats)

	option, err := svc.GetTravelOption(ctx, "F123")
	require.NoError(t, err)
	assert.Equal(t, 117, option.AvailableSeats)

	cancelled, err := svc.CancelBooking(ctx, booking.ID, "user123")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	option, err = svc.GetTravelOption(ctx, "F123")
	require.NoError(t, err)
	assert.Equal(t, 120, option.AvailableSeats)
}

func TestCreateBookingRequiresLogin(t *testing.T) {
	svc := newBookingService()

	_, err := svc.CreateBooking(context.Background(), "", "F123", 1)
	assert.True(t, domain.IsUnauthenticated(err))
}

func TestCreateBookingUnknownTravelOption(t *testing.T) {
	svc := newBookingService()

	_, err := svc.CreateBooking(context.Background(), "user123", "X000", 1)
	assert.True(t, domain.IsNotFound(err))
}

func TestCreateBookingRejectsNonPositiveSeats(t *testing.T) {
	svc := newBookingService()

	for _, seats := range []int{0, -1} {
		_, err := svc.CreateBooking(context.Background(), "user123", "F123", seats)
		assert.True(t, domain.IsValidation(err), "seats=%d", seats)
	}
}

func TestCreateBookingInsufficientSeats(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "user123", "B789", 3)
	require.True(t, domain.IsSeatsUnavailable(err))

	var unavailable domain.SeatsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, unavailable.Requested)
	assert.Equal(t, 2, unavailable.Available)

	option, err := svc.GetTravelOption(ctx, "B789")
	require.NoError(t, err)
	assert.Equal(t, 2, option.AvailableSeats)
}

func TestSoldOutOptionCannotBeBooked(t *testing.T) {
	svc := newBookingService()

	_, err := svc.CreateBooking(context.Background(), "user123", "F999", 1)
	assert.True(t, domain.IsSeatsUnavailable(err))
}

func TestGetBookingIsCaseInsensitive(t *testing.T) {
	svc := newBookingService()

	booking, err := svc.GetBooking(context.Background(), "bk001")
	require.NoError(t, err)
	assert.Equal(t, "BK001", booking.ID)
	assert.Equal(t, "user123", booking.UserID)
}

func TestCancelBookingByWrongOwner(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	_, err := svc.CancelBooking(ctx, "BK001", "alice")
	assert.True(t, domain.IsNotFound(err))

	// seats untouched on the referenced option
	option, err := svc.GetTravelOption(ctx, "T456")
	require.NoError(t, err)
	assert.Equal(t, 85, option.AvailableSeats)
}

func TestCancelTwiceNeverDoubleRestores(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "alice", "T567", 5)
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID, "alice")
	require.NoError(t, err)

	_, err = svc.CancelBooking(ctx, booking.ID, "alice")
	assert.True(t, domain.IsAlreadyCancelled(err))

	option, err := svc.GetTravelOption(ctx, "T567")
	require.NoError(t, err)
	assert.Equal(t, 200, option.AvailableSeats)
}

func TestBookingSnapshotIsFrozen(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "user123", "F234", 1)
	require.NoError(t, err)
	snapshotSeats := first.TravelOption.AvailableSeats

	_, err = svc.CreateBooking(ctx, "alice", "F234", 10)
	require.NoError(t, err)

	stored, err := svc.GetBooking(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, snapshotSeats, stored.TravelOption.AvailableSeats)
	assert.InDelta(t, 410.0, stored.TotalPrice, 0.001)
}

func TestListBookingsMostRecentFirst(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, "user123", "T567", 1)
	require.NoError(t, err)

	bookings, err := svc.ListBookings(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, created.ID, bookings[0].ID)
	assert.Equal(t, "BK001", bookings[1].ID)
}

func TestListBookingsBlankUserIsEmpty(t *testing.T) {
	svc := newBookingService()

	bookings, err := svc.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSeatInvariantHoldsAcrossSequences(t *testing.T) {
	svc := newBookingService()
	ctx := context.Background()

	ids := []string{}
	for i := 0; i < 5; i++ {
		if b, err := svc.CreateBooking(ctx, "user123", "T567", 7); err == nil {
			ids = append(ids, b.ID)
		}
	}
	for i, id := range ids {
		if i%2 == 0 {
			_, _ = svc.CancelBooking(ctx, id, "user123")
		}
	}
	_, _ = svc.CreateBooking(ctx, "alice", "B789", 2)
	_, _ = svc.CreateBooking(ctx, "alice", "B789", 1)

	options, err := svc.ListTravelOptions(ctx)
	require.NoError(t, err)
	for _, opt := range options {
		assert.GreaterOrEqual(t, opt.AvailableSeats, 0, opt.ID)
		assert.LessOrEqual(t, opt.AvailableSeats, opt.TotalSeats, opt.ID)
	}
}

func TestConcurrentBookingsNeverOversell(t *testing.T) {
	svc := BookingService{Store: repositories.NewSeededStore()}
	ctx := context.Background()

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, "user123", "B789", 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, domain.IsSeatsUnavailable(err))
		}
	}
	assert.Equal(t, 2, succeeded)

	option, err := svc.GetTravelOption(ctx, "B789")
	require.NoError(t, err)
	assert.Equal(t, 0, option.AvailableSeats)
}
