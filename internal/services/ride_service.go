package services

import (
	"context"
	"strings"

	"ridepool/internal/models"
	"ridepool/internal/observability"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/validators"
	"ridepool/pkg/logger"
)

// RideService creates and lists shared ride postings.
type RideService struct {
	rides  interfaces.RideRepository
	feed   FeedPublisher
	logger *logger.Logger
}

func NewRideService(rides interfaces.RideRepository, feed FeedPublisher, logger *logger.Logger) *RideService {
	return &RideService{
		rides:  rides,
		feed:   feed,
		logger: logger,
	}
}

// Share validates and stores a new posting. Per-vehicle seat ceilings are
// checked here and never again.
func (s *RideService) Share(ctx context.Context, req *validators.ShareRideRequest) (*models.Ride, error) {
	if errs := validators.ValidateShareRideRequest(req); len(errs) > 0 {
		return nil, errs
	}

	ride := &models.Ride{
		PosterName:      req.PosterName,
		ContactNumber:   req.ContactNumber,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DepartureTime:   req.DepartureTime,
		Vehicle:         models.VehicleType(req.Vehicle),
		VehicleNumber:   req.VehicleNumber,
		SeatingCapacity: req.SeatingCapacity,
		Gender:          models.Gender(req.Gender),
	}

	if err := s.rides.Insert(ctx, ride); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.PublishRidePosted(ride)
	}

	s.logger.LogRideEvent(ride.ID, "posted", map[string]interface{}{
		"vehicle": ride.Vehicle,
		"origin":  ride.Origin,
	})
	observability.RidesPostedTotal.WithLabelValues(string(ride.Vehicle)).Inc()

	return ride, nil
}

// Available returns the current postings for a vehicle type, newest first,
// optionally narrowed by case-insensitive origin/destination substrings.
func (s *RideService) Available(ctx context.Context, vehicle models.VehicleType, originQuery, destinationQuery string) ([]models.Ride, error) {
	rides, err := s.rides.List(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	if originQuery == "" && destinationQuery == "" {
		return rides, nil
	}

	originQ := strings.ToLower(originQuery)
	destQ := strings.ToLower(destinationQuery)

	filtered := make([]models.Ride, 0, len(rides))
	for _, ride := range rides {
		if originQ != "" && !strings.Contains(strings.ToLower(ride.Origin), originQ) {
			continue
		}
		if destQ != "" && !strings.Contains(strings.ToLower(ride.Destination), destQ) {
			continue
		}
		filtered = append(filtered, ride)
	}

	return filtered, nil
}
