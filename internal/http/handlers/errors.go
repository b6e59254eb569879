package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travely/internal/domain"
	"travely/internal/http/middleware"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

func respondCoded(c *gin.Context, status int, code, message string, extra gin.H) {
	payload := gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondCoded(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsUnauthenticated(err), domain.IsInvalidCredentials(err):
		respondCoded(c, http.StatusUnauthorized, "unauthenticated", err.Error(), nil)
	case domain.IsNotFound(err):
		respondCoded(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondCoded(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsSeatsUnavailable(err):
		// expose availability so the client can refresh its stale read
		var target domain.SeatsUnavailableError
		errors.As(err, &target)
		respondCoded(c, http.StatusConflict, "seats_unavailable", err.Error(), gin.H{
			"available_seats": target.Available,
		})
	case domain.IsAlreadyCancelled(err):
		respondCoded(c, http.StatusConflict, "already_cancelled", err.Error(), nil)
	default:
		respondCoded(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
