package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travely/internal/http/middleware"
)

// GET /api/bookings/:id/eticket
func (a API) GetBookingETicket(c *gin.Context) {
	a.serveBookingPDF(c, a.Docs.GenerateETicket)
}

// GET /api/bookings/:id/receipt
func (a API) GetBookingReceipt(c *gin.Context) {
	a.serveBookingPDF(c, a.Docs.GenerateReceipt)
}

func (a API) serveBookingPDF(c *gin.Context, generate func(bookingID, userID string) ([]byte, string, error)) {
	userID := ""
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}
	pdf, filename, err := generate(c.Param("id"), userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
