package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusStop is a single stop on a shared bus route.
type BusStop struct {
	StopName      string `json:"stop_name" bson:"stop_name"`
	ScheduledTime string `json:"scheduled_time" bson:"scheduled_time"` // 24h HH:MM
}

// BusRoute is a bus schedule shared by a conductor or driver, browsable by
// state, district and city.
type BusRoute struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	State             string             `json:"state" bson:"state"`
	District          string             `json:"district" bson:"district"`
	City              string             `json:"city" bson:"city"`
	RouteNameOrNumber string             `json:"route_name_or_number" bson:"route_name_or_number"`
	BusNumber         string             `json:"bus_number,omitempty" bson:"bus_number,omitempty"`
	Stops             []BusStop          `json:"stops" bson:"stops"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}
