package interfaces

import (
	"context"

	"ridepool/internal/models"
)

// BookingRepository is the per-user booking cache. Each user key owns its
// list exclusively; writes replace the whole list so a failed write leaves
// the previous state intact.
type BookingRepository interface {
	ReadAll(ctx context.Context, userKey string) ([]models.BookedRide, error)
	WriteAll(ctx context.Context, userKey string, rides []models.BookedRide) error
}
