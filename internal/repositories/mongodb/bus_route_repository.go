package mongodb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type busRouteRepository struct {
	collection *mongo.Collection
}

func NewBusRouteRepository(db *mongo.Database) interfaces.BusRouteRepository {
	return &busRouteRepository{
		collection: db.Collection(utils.BusRoutesCollection),
	}
}

func (r *busRouteRepository) Insert(ctx context.Context, route *models.BusRoute) error {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		return fmt.Errorf("failed to insert bus route: %w", err)
	}

	return nil
}

func (r *busRouteRepository) List(ctx context.Context, filter interfaces.BusRouteFilter) ([]models.BusRoute, error) {
	query := bson.M{}
	if filter.State != "" {
		query["state"] = filter.State
	}
	if filter.District != "" {
		query["district"] = filter.District
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bus routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []models.BusRoute
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode bus routes: %w", err)
	}

	// City is a free-text substring, filtered here rather than in the query.
	if filter.City != "" {
		cityQ := strings.ToLower(filter.City)
		filtered := routes[:0]
		for _, route := range routes {
			if strings.Contains(strings.ToLower(route.City), cityQ) {
				filtered = append(filtered, route)
			}
		}
		routes = filtered
	}

	return routes, nil
}

func (r *busRouteRepository) DistinctStates(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "state", bson.M{})
}

func (r *busRouteRepository) DistinctDistricts(ctx context.Context, state string) ([]string, error) {
	return r.distinct(ctx, "district", bson.M{"state": state})
}

func (r *busRouteRepository) distinct(ctx context.Context, field string, query bson.M) ([]string, error) {
	values, err := r.collection.Distinct(ctx, field, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s values: %w", field, err)
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	sort.Strings(result)

	return result, nil
}
