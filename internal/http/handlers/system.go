package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func (a API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
