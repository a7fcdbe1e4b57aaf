package handlers

import (
	"net/http"

	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"

	"github.com/gin-gonic/gin"
)

type BusRouteHandler struct {
	busRouteService *services.BusRouteService
}

func NewBusRouteHandler(busRouteService *services.BusRouteService) *BusRouteHandler {
	return &BusRouteHandler{
		busRouteService: busRouteService,
	}
}

// ShareBusRoute creates a new shared bus route
func (h *BusRouteHandler) ShareBusRoute(c *gin.Context) {
	var request validators.ShareBusRouteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	route, err := h.busRouteService.Share(c.Request.Context(), &request)
	if err != nil {
		if errs, ok := err.(validators.ValidationErrors); ok {
			utils.ValidationErrorResponse(c, errs.Fields())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "BUS_ROUTE_SHARE_FAILED", "Failed to share bus route: "+err.Error())
		return
	}

	utils.CreatedResponse(c, "Bus route shared successfully", route)
}

// ListBusRoutes returns routes matching the location filters
func (h *BusRouteHandler) ListBusRoutes(c *gin.Context) {
	filter := interfaces.BusRouteFilter{
		State:    c.Query("state"),
		District: c.Query("district"),
		City:     c.Query("city"),
	}

	routes, err := h.busRouteService.Routes(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "BUS_ROUTE_LIST_FAILED", "Failed to list bus routes: "+err.Error())
		return
	}

	utils.SuccessResponseWithMeta(c, "Bus routes retrieved successfully", routes, &utils.Meta{
		Count: len(routes),
	})
}

// ListStates returns the states that have shared routes
func (h *BusRouteHandler) ListStates(c *gin.Context) {
	states, err := h.busRouteService.States(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "BUS_ROUTE_STATES_FAILED", "Failed to list states: "+err.Error())
		return
	}

	utils.SuccessResponse(c, "States retrieved successfully", states)
}

// ListDistricts returns the districts within a state that have shared routes
func (h *BusRouteHandler) ListDistricts(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		utils.BadRequestResponse(c, "state query parameter is required")
		return
	}

	districts, err := h.busRouteService.Districts(c.Request.Context(), state)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "BUS_ROUTE_DISTRICTS_FAILED", "Failed to list districts: "+err.Error())
		return
	}

	utils.SuccessResponse(c, "Districts retrieved successfully", districts)
}
