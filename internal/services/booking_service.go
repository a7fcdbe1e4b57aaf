package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/observability"
	"ridepool/internal/repositories/interfaces"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingOutcome string

const (
	// OutcomeBooked: local cache written and the shared posting deleted
	// (or already gone, which ends in the same state).
	OutcomeBooked BookingOutcome = "booked"
	// OutcomeBookedLocallyOnly: local cache written, shared delete failed.
	// The ride may still be listed and may get taken by someone else.
	OutcomeBookedLocallyOnly BookingOutcome = "booked_locally_only"
	// OutcomeAborted: local cache write failed, nothing changed remotely.
	OutcomeAborted BookingOutcome = "aborted"
)

// BookingResult is what a booking attempt came to. ContactNumber is set on
// the two non-aborted outcomes so the caller can start the phone call to the
// poster; the service itself never dials.
type BookingResult struct {
	Outcome       BookingOutcome
	Ride          models.BookedRide
	ContactNumber string
	Err           error
}

// FeedPublisher pushes listing events to connected browse pages so they can
// drop a booked ride without re-querying the store.
type FeedPublisher interface {
	PublishRidePosted(ride *models.Ride)
	PublishRideBooked(vehicle models.VehicleType, rideID string)
}

// Notifier tells a poster their ride was booked. Best effort only: failures
// are logged and never change the booking outcome.
type Notifier interface {
	NotifyRideBooked(ctx context.Context, ride *models.Ride) error
}

// BookingService moves rides between the shared store and per-user booking
// caches. The step order in Book is load-bearing: the local booking must be
// durably recorded before the shared posting is deleted, so a booked ride
// can never be missing from the user's own list.
type BookingService struct {
	bookings interfaces.BookingRepository
	rides    interfaces.RideRepository
	feed     FeedPublisher
	notifier Notifier
	logger   *logger.Logger
}

func NewBookingService(
	bookings interfaces.BookingRepository,
	rides interfaces.RideRepository,
	feed FeedPublisher,
	notifier Notifier,
	logger *logger.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		rides:    rides,
		feed:     feed,
		notifier: notifier,
		logger:   logger,
	}
}

// Book claims a ride for the given user.
//
// Steps, in mandated order:
//  1. read the user's booking cache; if the ride is already there, skip
//     re-insertion but still run the shared delete
//  2. append the ride and persist the cache; failure aborts before any
//     remote mutation
//  3. delete the posting from the shared store; "not found" means a
//     concurrent booker won the delete and the ride is gone either way, so
//     it is folded into success; any other failure keeps the local booking
//     and is reported as BookedLocallyOnly
//
// There is no rollback of step 2 when step 3 fails and no retry anywhere;
// the caller decides what to tell the user.
func (s *BookingService) Book(ctx context.Context, userKey string, ride *models.Ride) BookingResult {
	existing, err := s.bookings.ReadAll(ctx, userKey)
	if err != nil {
		return s.aborted(userKey, ride, &LocalPersistenceError{Op: "read", Err: err})
	}

	booked := models.NewBookedRide(ride, time.Now())
	alreadyBooked := false
	for _, b := range existing {
		if b.RideID == ride.ID {
			booked = b
			alreadyBooked = true
			break
		}
	}

	if !alreadyBooked {
		if err := s.bookings.WriteAll(ctx, userKey, append(existing, booked)); err != nil {
			return s.aborted(userKey, ride, &LocalPersistenceError{Op: "write", Err: err})
		}
	}

	if err := s.rides.DeleteByID(ctx, ride.ID); err != nil && !errors.Is(err, interfaces.ErrRideNotFound) {
		s.logger.WithRideID(ride.ID).WithField("user_key", userKey).WithError(err).
			Warn("Ride booked locally but shared store delete failed")
		observability.BookingsTotal.WithLabelValues(string(OutcomeBookedLocallyOnly)).Inc()
		return BookingResult{
			Outcome:       OutcomeBookedLocallyOnly,
			Ride:          booked,
			ContactNumber: ride.ContactNumber,
			Err:           &RemoteDeleteError{Err: err},
		}
	}

	if s.feed != nil {
		s.feed.PublishRideBooked(ride.Vehicle, ride.ID.Hex())
	}
	if s.notifier != nil && ride.ContactNumber != "" {
		if err := s.notifier.NotifyRideBooked(ctx, ride); err != nil {
			s.logger.WithRideID(ride.ID).WithError(err).Warn("Failed to notify ride poster")
		}
	}

	s.logger.LogBookingEvent(ride.ID, "booked", map[string]interface{}{
		"user_key": userKey,
		"vehicle":  ride.Vehicle,
	})
	observability.BookingsTotal.WithLabelValues(string(OutcomeBooked)).Inc()

	return BookingResult{
		Outcome:       OutcomeBooked,
		Ride:          booked,
		ContactNumber: ride.ContactNumber,
	}
}

// BookByID loads the posting from the shared store, then books it. Used by
// the HTTP layer, which only has the ride id.
func (s *BookingService) BookByID(ctx context.Context, userKey string, rideID primitive.ObjectID) (BookingResult, error) {
	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return BookingResult{}, err
	}
	return s.Book(ctx, userKey, ride), nil
}

// Unbook removes a ride from the user's booking cache. The shared store is
// never touched: once booked, the posting's presence there is immaterial.
// Removing an id that is not in the cache is a no-op.
func (s *BookingService) Unbook(ctx context.Context, userKey string, rideID primitive.ObjectID) error {
	existing, err := s.bookings.ReadAll(ctx, userKey)
	if err != nil {
		return &LocalPersistenceError{Op: "read", Err: err}
	}

	remaining := make([]models.BookedRide, 0, len(existing))
	for _, b := range existing {
		if b.RideID != rideID {
			remaining = append(remaining, b)
		}
	}
	if len(remaining) == len(existing) {
		return nil
	}

	if err := s.bookings.WriteAll(ctx, userKey, remaining); err != nil {
		return &LocalPersistenceError{Op: "write", Err: err}
	}

	s.logger.LogBookingEvent(rideID, "removed", map[string]interface{}{
		"user_key": userKey,
	})

	return nil
}

// BookedRides lists the user's booked rides, most recently posted first.
func (s *BookingService) BookedRides(ctx context.Context, userKey string) ([]models.BookedRide, error) {
	rides, err := s.bookings.ReadAll(ctx, userKey)
	if err != nil {
		return nil, &LocalPersistenceError{Op: "read", Err: err}
	}

	sort.Slice(rides, func(i, j int) bool {
		return rides[i].PostedAt.After(rides[j].PostedAt)
	})

	return rides, nil
}

func (s *BookingService) aborted(userKey string, ride *models.Ride, err error) BookingResult {
	s.logger.WithRideID(ride.ID).WithField("user_key", userKey).WithError(err).
		Error("Booking aborted, shared posting left untouched")
	observability.BookingsTotal.WithLabelValues(string(OutcomeAborted)).Inc()
	return BookingResult{
		Outcome: OutcomeAborted,
		Err:     err,
	}
}
