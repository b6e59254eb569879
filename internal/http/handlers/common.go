package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travely/internal/services"
)

// API bundles the services the transport layer dispatches to.
type API struct {
	Bookings   services.BookingService
	Identity   services.IdentityService
	Docs       services.DocsService
	JWTSecret  []byte
	SessionTTL time.Duration
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "missing request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
