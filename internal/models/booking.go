package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookedRide is the snapshot of a Ride a user keeps after booking it.
// It is held in the per-user booking cache, one entry per ride id, and is
// only ever removed by the user's explicit request.
type BookedRide struct {
	RideID          primitive.ObjectID `json:"ride_id"`
	PosterName      string             `json:"poster_name"`
	ContactNumber   string             `json:"contact_number"`
	Origin          string             `json:"origin"`
	Destination     string             `json:"destination"`
	DepartureTime   string             `json:"departure_time"`
	Vehicle         VehicleType        `json:"vehicle"`
	VehicleNumber   string             `json:"vehicle_number,omitempty"`
	SeatingCapacity int                `json:"seating_capacity"`
	Gender          Gender             `json:"gender"`
	PostedAt        time.Time          `json:"posted_at"`
	BookedAt        time.Time          `json:"booked_at"`
}

// NewBookedRide copies a ride's fields at booking time.
func NewBookedRide(ride *Ride, bookedAt time.Time) BookedRide {
	return BookedRide{
		RideID:          ride.ID,
		PosterName:      ride.PosterName,
		ContactNumber:   ride.ContactNumber,
		Origin:          ride.Origin,
		Destination:     ride.Destination,
		DepartureTime:   ride.DepartureTime,
		Vehicle:         ride.Vehicle,
		VehicleNumber:   ride.VehicleNumber,
		SeatingCapacity: ride.SeatingCapacity,
		Gender:          ride.Gender,
		PostedAt:        ride.CreatedAt,
		BookedAt:        bookedAt,
	}
}
