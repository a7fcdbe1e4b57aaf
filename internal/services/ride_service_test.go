package services

import (
	"context"
	"errors"
	"testing"

	"ridepool/internal/models"
	"ridepool/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func listingRides() map[primitive.ObjectID]*models.Ride {
	rides := []*models.Ride{
		{ID: primitive.NewObjectID(), Vehicle: models.VehicleCar, Origin: "Koramangala", Destination: "Whitefield"},
		{ID: primitive.NewObjectID(), Vehicle: models.VehicleCar, Origin: "Indiranagar", Destination: "Electronic City"},
		{ID: primitive.NewObjectID(), Vehicle: models.VehicleBike, Origin: "Koramangala", Destination: "HSR Layout"},
	}
	out := make(map[primitive.ObjectID]*models.Ride, len(rides))
	for _, r := range rides {
		out[r.ID] = r
	}
	return out
}

func TestAvailableFiltersBySubstringCaseInsensitive(t *testing.T) {
	svc := NewRideService(&memRides{rides: listingRides()}, &fakeFeed{}, testLogger(t))

	got, err := svc.Available(context.Background(), models.VehicleCar, "KORA", "")
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(got) != 1 || got[0].Origin != "Koramangala" {
		t.Fatalf("rides = %v, want the Koramangala car ride", got)
	}

	got, err = svc.Available(context.Background(), models.VehicleCar, "", "city")
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(got) != 1 || got[0].Destination != "Electronic City" {
		t.Fatalf("rides = %v, want the Electronic City ride", got)
	}
}

func TestAvailableWithoutQueryReturnsAllForVehicle(t *testing.T) {
	svc := NewRideService(&memRides{rides: listingRides()}, &fakeFeed{}, testLogger(t))

	got, err := svc.Available(context.Background(), models.VehicleCar, "", "")
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 car rides", len(got))
	}
}

func TestAvailableNoMatchesReturnsEmpty(t *testing.T) {
	svc := NewRideService(&memRides{rides: listingRides()}, &fakeFeed{}, testLogger(t))

	got, err := svc.Available(context.Background(), models.VehicleCar, "nowhere", "")
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rides = %v, want none", got)
	}
}

func TestSharePersistsAndPublishes(t *testing.T) {
	rides := &memRides{}
	feed := &fakeFeed{}
	svc := NewRideService(rides, feed, testLogger(t))

	ride, err := svc.Share(context.Background(), &validators.ShareRideRequest{
		PosterName:      "Asha",
		ContactNumber:   "9876543210",
		Origin:          "MG Road",
		Destination:     "Airport",
		DepartureTime:   "06:15",
		Vehicle:         "car",
		SeatingCapacity: 4,
		Gender:          "female",
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if _, ok := rides.rides[ride.ID]; !ok {
		t.Error("ride not persisted")
	}
	if len(feed.posted) != 1 {
		t.Errorf("feed posted events = %v", feed.posted)
	}
}

func TestShareRejectsOverCeilingCapacity(t *testing.T) {
	svc := NewRideService(&memRides{}, &fakeFeed{}, testLogger(t))

	_, err := svc.Share(context.Background(), &validators.ShareRideRequest{
		PosterName:      "Asha",
		ContactNumber:   "9876543210",
		Origin:          "MG Road",
		Destination:     "Airport",
		DepartureTime:   "06:15",
		Vehicle:         "car",
		SeatingCapacity: 8,
		Gender:          "female",
	})

	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	if _, ok := verrs.Fields()["SeatingCapacity"]; !ok {
		t.Fatalf("fields = %v, want SeatingCapacity flagged", verrs.Fields())
	}
}
