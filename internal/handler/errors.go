package handler

import (
	"errors"
	"net/http"
	"strconv"

	"campus-navigator/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto HTTP statuses
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
	case errors.Is(err, service.ErrNoRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": "no route between the specified locations"})
	case errors.Is(err, service.ErrInvalidSpeed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "walking speed must be positive"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// routeQuery reads the from, to and optional speed query parameters. It writes a
// 400 response and returns false when they are missing or malformed.
func routeQuery(c *gin.Context) (from, to string, speed float64, ok bool) {
	from = c.Query("from")
	to = c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'from' and 'to'"})
		return "", "", 0, false
	}

	if raw := c.Query("speed"); raw != "" {
		var err error
		speed, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid speed format"})
			return "", "", 0, false
		}
	}

	return from, to, speed, true
}
