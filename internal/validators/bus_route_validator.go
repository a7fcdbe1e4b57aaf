package validators

// BusStopRequest is a single stop in a shared bus route.
type BusStopRequest struct {
	StopName      string `json:"stop_name" validate:"required,min=1,max=100"`
	ScheduledTime string `json:"scheduled_time" validate:"required,time_hhmm"`
}

// ShareBusRouteRequest carries the fields of the share-a-bus-route form.
type ShareBusRouteRequest struct {
	State             string           `json:"state" validate:"required,min=2,max=100"`
	District          string           `json:"district" validate:"required,min=2,max=100"`
	City              string           `json:"city" validate:"required,min=2,max=100"`
	RouteNameOrNumber string           `json:"route_name_or_number" validate:"required,min=1,max=100"`
	BusNumber         string           `json:"bus_number" validate:"omitempty,max=20"`
	Stops             []BusStopRequest `json:"stops" validate:"required,min=1,dive"`
}

func ValidateShareBusRouteRequest(req *ShareBusRouteRequest) ValidationErrors {
	return ValidateStruct(req)
}
