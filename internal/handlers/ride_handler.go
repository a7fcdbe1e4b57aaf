package handlers

import (
	"net/http"

	"ridepool/internal/models"
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rideService *services.RideService
}

func NewRideHandler(rideService *services.RideService) *RideHandler {
	return &RideHandler{
		rideService: rideService,
	}
}

// ShareRide creates a new ride posting
func (h *RideHandler) ShareRide(c *gin.Context) {
	var request validators.ShareRideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.Share(c.Request.Context(), &request)
	if err != nil {
		if errs, ok := err.(validators.ValidationErrors); ok {
			utils.ValidationErrorResponse(c, errs.Fields())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "RIDE_SHARE_FAILED", "Failed to share ride: "+err.Error())
		return
	}

	utils.CreatedResponse(c, "Ride shared successfully", ride)
}

// ListRides returns the available postings for a vehicle type, optionally
// narrowed by origin/destination substrings.
func (h *RideHandler) ListRides(c *gin.Context) {
	vehicle, err := models.ParseVehicleType(c.Query("vehicle"))
	if err != nil {
		utils.BadRequestResponse(c, "vehicle must be one of: bike, car, auto")
		return
	}

	rides, err := h.rideService.Available(c.Request.Context(), vehicle, c.Query("origin"), c.Query("destination"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "RIDE_LIST_FAILED", "Failed to list rides: "+err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, "Rides retrieved successfully", rides, &utils.Meta{
		Count: len(rides),
	})
}
