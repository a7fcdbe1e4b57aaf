package utils

// Application Constants
const (
	AppName    = "RidePool"
	AppVersion = "1.0.0"

	DefaultTimeZone = "UTC"

	// Collections
	RidesCollection     = "rides"
	BusRoutesCollection = "bus_routes"

	// Booking cache
	BookingKeyPrefix = "bookings:"
)

// Response statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrInternalServer   = "internal server error"
	ErrUnauthorized     = "unauthorized"
	ErrForbidden        = "forbidden"
	ErrValidationFailed = "validation failed"
)
