package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the navigation API on r
func RegisterRoutes(r gin.IRouter, locations *LocationHandler, routes *RouteHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/locations", locations.ListLocations)
	r.GET("/locations/:name", locations.GetLocation)
	r.GET("/locations/:name/neighbors", locations.Neighbors)

	r.GET("/routes/shortest", routes.ShortestRoute)
	r.GET("/routes/options", routes.RouteOptions)
}
