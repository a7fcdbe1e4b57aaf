package handlers

import (
	"errors"
	"net/http"

	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/services"
	"ridepool/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// BookRide claims a listed ride for the authenticated user. The response
// carries the poster's contact number so the client can start the phone
// call, and the outcome so it can warn when the booking only landed locally.
func (h *BookingHandler) BookRide(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("ride_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	userKey, ok := userKeyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	result, err := h.bookingService.BookByID(c.Request.Context(), userKey, rideID)
	if err != nil {
		if errors.Is(err, interfaces.ErrRideNotFound) {
			utils.NotFoundResponse(c, "Ride")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to book ride: "+err.Error())
		return
	}

	switch result.Outcome {
	case services.OutcomeBooked:
		utils.SuccessResponse(c, "Ride booked successfully", gin.H{
			"outcome":        result.Outcome,
			"ride":           result.Ride,
			"contact_number": result.ContactNumber,
		})

	case services.OutcomeBookedLocallyOnly:
		// The ride is in the user's list but may still be listed for
		// others; say so instead of pretending everything worked.
		utils.SuccessResponse(c, "Ride saved to your rides, but it may already be taken by someone else", gin.H{
			"outcome":        result.Outcome,
			"ride":           result.Ride,
			"contact_number": result.ContactNumber,
		})

	default:
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "BOOKING_ABORTED", "Could not save this ride to your rides; the ride is still listed")
	}
}

// MyRides lists the authenticated user's booked rides
func (h *BookingHandler) MyRides(c *gin.Context) {
	userKey, ok := userKeyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	rides, err := h.bookingService.BookedRides(c.Request.Context(), userKey)
	if err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "BOOKINGS_UNAVAILABLE", "Could not load your booked rides")
		return
	}

	utils.SuccessResponseWithMeta(c, "Booked rides retrieved successfully", rides, &utils.Meta{
		Count: len(rides),
	})
}

// RemoveBooking removes a ride from the user's booked rides
func (h *BookingHandler) RemoveBooking(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("ride_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ride ID")
		return
	}

	userKey, ok := userKeyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.bookingService.Unbook(c.Request.Context(), userKey, rideID); err != nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "BOOKING_REMOVE_FAILED", "Could not remove the ride")
		return
	}

	utils.SuccessResponse(c, "Ride removed from your rides", nil)
}

func userKeyFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	objectID, ok := userID.(primitive.ObjectID)
	if !ok {
		return "", false
	}

	return objectID.Hex(), true
}
