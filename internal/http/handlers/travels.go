package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/travel-options
func (a API) ListTravelOptions(c *gin.Context) {
	options, err := a.Bookings.ListTravelOptions(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"travel_options": options})
}

// GET /api/travel-options/:id
func (a API) GetTravelOption(c *gin.Context) {
	option, err := a.Bookings.GetTravelOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}
