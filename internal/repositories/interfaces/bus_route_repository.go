package interfaces

import (
	"context"

	"ridepool/internal/models"
)

// BusRouteFilter narrows a bus route listing. State and District match
// exactly, City is a case-insensitive substring. Empty fields are skipped.
type BusRouteFilter struct {
	State    string
	District string
	City     string
}

type BusRouteRepository interface {
	Insert(ctx context.Context, route *models.BusRoute) error
	// List returns routes matching the filter, newest first.
	List(ctx context.Context, filter BusRouteFilter) ([]models.BusRoute, error)
	DistinctStates(ctx context.Context) ([]string, error)
	DistinctDistricts(ctx context.Context, state string) ([]string, error)
}
