package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/validators"
)

type memBusRoutes struct {
	routes []models.BusRoute
}

func (m *memBusRoutes) Insert(ctx context.Context, route *models.BusRoute) error {
	m.routes = append(m.routes, *route)
	return nil
}

func (m *memBusRoutes) List(ctx context.Context, filter interfaces.BusRouteFilter) ([]models.BusRoute, error) {
	var out []models.BusRoute
	for _, r := range m.routes {
		if filter.State != "" && r.State != filter.State {
			continue
		}
		if filter.District != "" && r.District != filter.District {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(r.City), strings.ToLower(filter.City)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memBusRoutes) DistinctStates(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range m.routes {
		if !seen[r.State] {
			seen[r.State] = true
			out = append(out, r.State)
		}
	}
	return out, nil
}

func (m *memBusRoutes) DistinctDistricts(ctx context.Context, state string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range m.routes {
		if r.State != state || seen[r.District] {
			continue
		}
		seen[r.District] = true
		out = append(out, r.District)
	}
	return out, nil
}

func TestShareBusRoutePersistsStops(t *testing.T) {
	repo := &memBusRoutes{}
	svc := NewBusRouteService(repo, testLogger(t))

	route, err := svc.Share(context.Background(), &validators.ShareBusRouteRequest{
		State:             "Karnataka",
		District:          "Bengaluru Urban",
		City:              "Bengaluru",
		RouteNameOrNumber: "335E",
		Stops: []validators.BusStopRequest{
			{StopName: "Majestic", ScheduledTime: "07:00"},
			{StopName: "Marathahalli", ScheduledTime: "07:45"},
		},
	})
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if len(route.Stops) != 2 || route.Stops[0].StopName != "Majestic" {
		t.Fatalf("stops = %v", route.Stops)
	}
	if len(repo.routes) != 1 {
		t.Fatalf("persisted routes = %d, want 1", len(repo.routes))
	}
}

func TestShareBusRouteRequiresStops(t *testing.T) {
	svc := NewBusRouteService(&memBusRoutes{}, testLogger(t))

	_, err := svc.Share(context.Background(), &validators.ShareBusRouteRequest{
		State:             "Karnataka",
		District:          "Bengaluru Urban",
		City:              "Bengaluru",
		RouteNameOrNumber: "335E",
	})

	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
}

func TestDistrictsScopedToState(t *testing.T) {
	repo := &memBusRoutes{routes: []models.BusRoute{
		{State: "Karnataka", District: "Bengaluru Urban"},
		{State: "Karnataka", District: "Mysuru"},
		{State: "Kerala", District: "Ernakulam"},
	}}
	svc := NewBusRouteService(repo, testLogger(t))

	districts, err := svc.Districts(context.Background(), "Karnataka")
	if err != nil {
		t.Fatalf("districts: %v", err)
	}
	if len(districts) != 2 {
		t.Fatalf("districts = %v, want two Karnataka districts", districts)
	}
}
