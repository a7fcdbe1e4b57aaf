package routes

import (
	"ridepool/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up routes for the booking lifecycle. All booking
// operations are scoped to the authenticated user.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler, auth gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	bookings.Use(auth)
	{
		bookings.POST("/:ride_id", bookingHandler.BookRide)
		bookings.GET("", bookingHandler.MyRides)
		bookings.DELETE("/:ride_id", bookingHandler.RemoveBooking)
	}
}
