package notify

import (
	"context"

	"ridepool/internal/models"
)

// Notifier tells a ride poster their posting was booked.
type Notifier interface {
	NotifyRideBooked(ctx context.Context, ride *models.Ride) error
}

// Noop discards notifications. Used when no SMS provider is configured and
// in tests.
type Noop struct{}

func (Noop) NotifyRideBooked(ctx context.Context, ride *models.Ride) error {
	return nil
}
