package repositories

import (
	"strings"
	"sync"

	"travely/internal/domain"
	"travely/internal/domain/models"
)

// Store owns the travel option, booking and user collections. It replaces the
// global mutable arrays of the legacy frontend with an explicitly constructed
// object so tests can work against fresh instances.
//
// All reads return defensive copies. The compound mutations (ReserveSeats,
// CancelBooking) run their check-then-act sequence under the write lock, so
// inventory can never be oversold or double-restored by concurrent callers.
type Store struct {
	mu       sync.RWMutex
	options  []models.TravelOption
	bookings []models.Booking
	users    []models.User
}

func NewStore(options []models.TravelOption, bookings []models.Booking, users []models.User) *Store {
	s := &Store{
		options:  make([]models.TravelOption, len(options)),
		bookings: make([]models.Booking, len(bookings)),
		users:    make([]models.User, len(users)),
	}
	copy(s.options, options)
	copy(s.bookings, bookings)
	copy(s.users, users)
	return s
}

// ListTravelOptions returns a copy of all options, unfiltered. Filtering is a
// client concern.
func (s *Store) ListTravelOptions() []models.TravelOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TravelOption, len(s.options))
	copy(out, s.options)
	return out
}

// GetTravelOption looks an option up by exact, case-sensitive id.
func (s *Store) GetTravelOption(id string) (models.TravelOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opt := range s.options {
		if opt.ID == id {
			return opt, nil
		}
	}
	return models.TravelOption{}, domain.NotFoundError{Resource: "travel option"}
}

// ReserveSeats atomically checks availability and decrements the counter,
// returning a snapshot of the option as it stands after the decrement.
func (s *Store) ReserveSeats(travelID string, seats int) (models.TravelOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.options {
		if s.options[i].ID != travelID {
			continue
		}
		if s.options[i].AvailableSeats < seats {
			return models.TravelOption{}, domain.SeatsUnavailableError{
				TravelID:  travelID,
				Requested: seats,
				Available: s.options[i].AvailableSeats,
			}
		}
		s.options[i].AvailableSeats -= seats
		return s.options[i], nil
	}
	return models.TravelOption{}, domain.NotFoundError{Resource: "travel option"}
}

// AppendBooking records a new booking.
func (s *Store) AppendBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

// ListBookings returns the bookings owned by userID. A blank userID yields an
// empty slice, not an error.
func (s *Store) ListBookings(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	if strings.TrimSpace(userID) == "" {
		return out
	}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// GetBooking looks a booking up by id, case-insensitively.
func (s *Store) GetBooking(bookingID string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if strings.EqualFold(b.ID, bookingID) {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// CancelBooking flips a Confirmed booking owned by userID to Cancelled and
// restores its seats to the live travel option, all under one lock.
//
// The ownership check is folded into the not-found error on purpose: a caller
// probing someone else's booking id learns nothing about its existence.
//
// When the referenced option no longer exists the booking is still cancelled
// and restored=false is returned; the legacy system behaved this way and the
// behavior is kept as documented.
func (s *Store) CancelBooking(bookingID, userID string) (booking models.Booking, restored bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != bookingID || s.bookings[i].UserID != userID {
			continue
		}
		if s.bookings[i].Status == models.BookingCancelled {
			return models.Booking{}, false, domain.AlreadyCancelledError{BookingID: bookingID}
		}
		for j := range s.options {
			if s.options[j].ID == s.bookings[i].TravelOption.ID {
				s.options[j].AvailableSeats += s.bookings[i].Seats
				if s.options[j].AvailableSeats > s.options[j].TotalSeats {
					s.options[j].AvailableSeats = s.options[j].TotalSeats
				}
				restored = true
				break
			}
		}
		s.bookings[i].Status = models.BookingCancelled
		return s.bookings[i], restored, nil
	}
	return models.Booking{}, false, domain.NotFoundError{Resource: "booking (or no permission to cancel it)"}
}

// GetUser looks a user up by normalized (lowercase) id.
func (s *Store) GetUser(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == strings.ToLower(id) {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

// AppendUser registers a new user. Returns a ConflictError when the normalized
// id is already taken.
func (s *Store) AppendUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.ID == u.ID {
			return domain.ConflictError{Resource: "user", Msg: "username already exists"}
		}
	}
	s.users = append(s.users, u)
	return nil
}

// UpdateUserName mutates the display name in place and returns the updated user.
func (s *Store) UpdateUserName(id, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == strings.ToLower(id) {
			s.users[i].Name = name
			return s.users[i], nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}
