package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleType string

const (
	VehicleBike VehicleType = "bike"
	VehicleCar  VehicleType = "car"
	VehicleAuto VehicleType = "auto"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// SeatCeilings caps total seating capacity (including the driver) per vehicle
// type. Enforced when a ride is shared, never re-checked afterwards.
var SeatCeilings = map[VehicleType]int{
	VehicleBike: 2,
	VehicleCar:  7,
	VehicleAuto: 6,
}

// Ride is a shared-ride posting. It lives in the shared rides collection
// until another user books it, at which point it is deleted there and the
// booking user keeps a BookedRide snapshot.
type Ride struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PosterName      string             `json:"poster_name" bson:"poster_name"`
	ContactNumber   string             `json:"contact_number" bson:"contact_number"`
	Origin          string             `json:"origin" bson:"origin"`
	Destination     string             `json:"destination" bson:"destination"`
	DepartureTime   string             `json:"departure_time" bson:"departure_time"` // 24h HH:MM
	Vehicle         VehicleType        `json:"vehicle" bson:"vehicle"`
	VehicleNumber   string             `json:"vehicle_number,omitempty" bson:"vehicle_number,omitempty"`
	SeatingCapacity int                `json:"seating_capacity" bson:"seating_capacity"` // includes driver
	Gender          Gender             `json:"gender" bson:"gender"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}

// PassengerSeats returns the seats left for passengers once the driver is
// accounted for.
func (r *Ride) PassengerSeats() int {
	if r.SeatingCapacity <= 1 {
		return 0
	}
	return r.SeatingCapacity - 1
}

func (v VehicleType) Valid() bool {
	_, ok := SeatCeilings[v]
	return ok
}

func (v VehicleType) String() string {
	return string(v)
}

func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown vehicle type %q", s)
	}
	return v, nil
}
