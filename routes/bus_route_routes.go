package routes

import (
	"ridepool/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBusRouteRoutes sets up routes for bus schedule information.
func SetupBusRouteRoutes(r *gin.RouterGroup, busRouteHandler *handlers.BusRouteHandler, auth gin.HandlerFunc) {
	busRoutes := r.Group("/bus-routes")
	{
		busRoutes.GET("", busRouteHandler.ListBusRoutes)
		busRoutes.GET("/states", busRouteHandler.ListStates)
		busRoutes.GET("/districts", busRouteHandler.ListDistricts)
		busRoutes.POST("", auth, busRouteHandler.ShareBusRoute)
	}
}
