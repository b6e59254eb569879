package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"travely/internal/domain/models"
	"travely/internal/http/middleware"
)

type createBookingRequest struct {
	TravelID string `json:"travel_id"`
	Seats    int    `json:"seats"`
}

type bookingSummary struct {
	ID          string  `json:"id"`
	TravelID    string  `json:"travelId"`
	Type        string  `json:"type"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Seats       int     `json:"seats"`
	TotalPrice  float64 `json:"totalPrice"`
	Status      string  `json:"status"`
	BookingTime string  `json:"bookingTime"`
}

func summarize(b models.Booking) bookingSummary {
	return bookingSummary{
		ID:          b.ID,
		TravelID:    b.TravelOption.ID,
		Type:        string(b.TravelOption.Type),
		Source:      b.TravelOption.Source,
		Destination: b.TravelOption.Destination,
		Seats:       b.Seats,
		TotalPrice:  b.TotalPrice,
		Status:      string(b.Status),
		BookingTime: b.BookingTime.Format(time.RFC3339),
	}
}

// GET /api/bookings — the current user's bookings, most recent first.
// Anonymous callers get an empty list, mirroring the service contract.
func (a API) ListBookings(c *gin.Context) {
	userID := ""
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	bookings, err := a.Bookings.ListBookings(c.Request.Context(), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": lo.Map(bookings, func(b models.Booking, _ int) bookingSummary {
			return summarize(b)
		}),
	})
}

// POST /api/bookings
func (a API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	userID := ""
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	booking, err := a.Bookings.CreateBooking(c.Request.Context(), userID, req.TravelID, req.Seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings/:id — status lookup by booking code, case-insensitive.
func (a API) GetBooking(c *gin.Context) {
	booking, err := a.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func (a API) CancelBooking(c *gin.Context) {
	userID := ""
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	booking, err := a.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
