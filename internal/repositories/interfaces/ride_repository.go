package interfaces

import (
	"context"
	"errors"

	"ridepool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRideNotFound is returned by DeleteByID and GetByID when the ride is not
// in the shared store. Callers must be able to tell this apart from other
// failures: for a booking, "already gone" means someone else got there first,
// which is not an error for the delete itself.
var ErrRideNotFound = errors.New("ride not found")

// RideRepository is the shared ride record store. Postings are only ever
// created or deleted, never updated, so delete-by-id is the single contended
// write per document.
type RideRepository interface {
	Insert(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	// List returns postings for a vehicle type, newest first.
	List(ctx context.Context, vehicle models.VehicleType) ([]models.Ride, error)
	// DeleteByID removes a posting. Returns ErrRideNotFound when the posting
	// is already absent.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}
