package mongodb

import (
	"context"
	"fmt"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideRepository struct {
	collection *mongo.Collection
}

func NewRideRepository(db *mongo.Database) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection(utils.RidesCollection),
	}
}

func (r *rideRepository) Insert(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, ride)
	if err != nil {
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	return &ride, nil
}

func (r *rideRepository) List(ctx context.Context, vehicle models.VehicleType) ([]models.Ride, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"vehicle": vehicle}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []models.Ride
	if err := cursor.All(ctx, &rides); err != nil {
		return nil, fmt.Errorf("failed to decode rides: %w", err)
	}

	return rides, nil
}

func (r *rideRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	if result.DeletedCount == 0 {
		return interfaces.ErrRideNotFound
	}

	return nil
}
