package handler

import (
	"context"
	"net/http"

	"campus-navigator/internal/models"

	"github.com/gin-gonic/gin"
)

// RouteHandler handles route planning requests
type RouteHandler struct {
	service RouteService
}

// RouteService interface for dependency injection
type RouteService interface {
	ShortestRoute(ctx context.Context, from, to string, speed float64) (*models.Route, error)
	RouteOptions(ctx context.Context, from, to string, speed float64) ([]models.RouteOption, error)
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(svc RouteService) *RouteHandler {
	return &RouteHandler{service: svc}
}

// ShortestRoute handles GET /routes/shortest requests
//
//	@Summary	Shortest walking route
//	@Produce	json
//	@Param		from	query		string	true	"Origin location"
//	@Param		to		query		string	true	"Destination location"
//	@Param		speed	query		number	false	"Walking speed in km/h"
//	@Success	200		{object}	models.Route
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/routes/shortest [get]
func (h *RouteHandler) ShortestRoute(c *gin.Context) {
	from, to, speed, ok := routeQuery(c)
	if !ok {
		return
	}

	route, err := h.service.ShortestRoute(c.Request.Context(), from, to, speed)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// RouteOptions handles GET /routes/options requests
//
//	@Summary	Ranked alternative routes, fastest first
//	@Produce	json
//	@Param		from	query	string	true	"Origin location"
//	@Param		to		query	string	true	"Destination location"
//	@Param		speed	query	number	false	"Walking speed in km/h"
//	@Success	200		{array}	models.RouteOption
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/routes/options [get]
func (h *RouteHandler) RouteOptions(c *gin.Context) {
	from, to, speed, ok := routeQuery(c)
	if !ok {
		return
	}

	options, err := h.service.RouteOptions(c.Request.Context(), from, to, speed)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}
