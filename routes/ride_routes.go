package routes

import (
	"ridepool/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRideRoutes sets up routes for ride postings. Browsing is public,
// sharing a ride requires a signed-in user.
func SetupRideRoutes(r *gin.RouterGroup, rideHandler *handlers.RideHandler, auth gin.HandlerFunc) {
	rides := r.Group("/rides")
	{
		rides.GET("", rideHandler.ListRides)
		rides.POST("", auth, rideHandler.ShareRide)
	}
}
