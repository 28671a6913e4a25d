package handler

import (
	"context"
	"net/http"

	"campus-navigator/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the campus location directory
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	Locations(context.Context) ([]models.Location, error)
	Location(context.Context, string) (*models.Location, error)
	Neighbors(context.Context, string) ([]string, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// ListLocations handles GET /locations requests
//
//	@Summary	List campus locations
//	@Produce	json
//	@Success	200	{array}	models.Location
//	@Router		/locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// GetLocation handles GET /locations/:name requests
//
//	@Summary	Get a campus location
//	@Produce	json
//	@Param		name	path		string	true	"Location name"
//	@Success	200		{object}	models.Location
//	@Failure	404		{object}	map[string]string
//	@Router		/locations/{name} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	location, err := h.service.Location(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// Neighbors handles GET /locations/:name/neighbors requests
//
//	@Summary	List directly connected locations
//	@Produce	json
//	@Param		name	path	string	true	"Location name"
//	@Success	200		{array}	string
//	@Failure	404		{object}	map[string]string
//	@Router		/locations/{name}/neighbors [get]
func (h *LocationHandler) Neighbors(c *gin.Context) {
	neighbors, err := h.service.Neighbors(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, neighbors)
}
