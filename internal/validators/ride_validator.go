package validators

import (
	"fmt"

	"ridepool/internal/models"
)

// ShareRideRequest carries the fields of the share-a-ride form.
type ShareRideRequest struct {
	PosterName      string `json:"poster_name" validate:"required,min=2,max=100"`
	ContactNumber   string `json:"contact_number" validate:"required,min=10,max=15,digits_only"`
	Origin          string `json:"origin" validate:"required,min=3,max=255"`
	Destination     string `json:"destination" validate:"required,min=3,max=255"`
	DepartureTime   string `json:"departure_time" validate:"required,time_hhmm"`
	Vehicle         string `json:"vehicle" validate:"required,oneof=bike car auto"`
	VehicleNumber   string `json:"vehicle_number" validate:"omitempty,max=20"`
	SeatingCapacity int    `json:"seating_capacity" validate:"required,min=1"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
}

// ValidateShareRideRequest runs the struct tags plus the per-vehicle seat
// ceiling check. The ceiling counts total capacity including the driver and
// is only enforced here, at posting time.
func ValidateShareRideRequest(req *ShareRideRequest) ValidationErrors {
	errors := ValidateStruct(req)

	vehicle := models.VehicleType(req.Vehicle)
	if ceiling, ok := models.SeatCeilings[vehicle]; ok && req.SeatingCapacity > ceiling {
		errors = append(errors, ValidationError{
			Field:   "SeatingCapacity",
			Tag:     "seat_ceiling",
			Value:   fmt.Sprintf("%d", req.SeatingCapacity),
			Message: fmt.Sprintf("%s seating capacity cannot be more than %d", vehicle, ceiling),
		})
	}

	return errors
}
