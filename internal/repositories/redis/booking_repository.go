package redis

import (
	"context"
	"errors"
	"fmt"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/cache"

	goredis "github.com/redis/go-redis/v9"
)

type bookingRepository struct {
	cache *cache.RedisCache
}

// NewBookingRepository stores each user's booked rides as a single JSON
// value keyed by user, so a write either replaces the full list or leaves
// the old one in place.
func NewBookingRepository(cache *cache.RedisCache) interfaces.BookingRepository {
	return &bookingRepository{
		cache: cache,
	}
}

func bookingKey(userKey string) string {
	return utils.BookingKeyPrefix + userKey
}

func (r *bookingRepository) ReadAll(ctx context.Context, userKey string) ([]models.BookedRide, error) {
	var rides []models.BookedRide
	err := r.cache.Get(ctx, bookingKey(userKey), &rides)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return rides, nil
}

func (r *bookingRepository) WriteAll(ctx context.Context, userKey string, rides []models.BookedRide) error {
	if rides == nil {
		rides = []models.BookedRide{}
	}

	// No expiration: booked rides stay until the user removes them.
	if err := r.cache.Set(ctx, bookingKey(userKey), rides, 0); err != nil {
		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}
