package services

import (
	"context"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/internal/validators"
	"ridepool/pkg/logger"
)

// BusRouteService manages shared bus schedules.
type BusRouteService struct {
	routes interfaces.BusRouteRepository
	logger *logger.Logger
}

func NewBusRouteService(routes interfaces.BusRouteRepository, logger *logger.Logger) *BusRouteService {
	return &BusRouteService{
		routes: routes,
		logger: logger,
	}
}

func (s *BusRouteService) Share(ctx context.Context, req *validators.ShareBusRouteRequest) (*models.BusRoute, error) {
	if errs := validators.ValidateShareBusRouteRequest(req); len(errs) > 0 {
		return nil, errs
	}

	stops := make([]models.BusStop, 0, len(req.Stops))
	for _, stop := range req.Stops {
		stops = append(stops, models.BusStop{
			StopName:      stop.StopName,
			ScheduledTime: stop.ScheduledTime,
		})
	}

	// Location names are title-cased so the distinct state/district lists
	// do not fragment on caller casing.
	route := &models.BusRoute{
		State:             utils.ToTitleCase(req.State),
		District:          utils.ToTitleCase(req.District),
		City:              utils.ToTitleCase(req.City),
		RouteNameOrNumber: req.RouteNameOrNumber,
		BusNumber:         req.BusNumber,
		Stops:             stops,
	}

	if err := s.routes.Insert(ctx, route); err != nil {
		return nil, err
	}

	s.logger.WithField("state", route.State).WithField("city", route.City).
		Info("Bus route shared")

	return route, nil
}

func (s *BusRouteService) Routes(ctx context.Context, filter interfaces.BusRouteFilter) ([]models.BusRoute, error) {
	return s.routes.List(ctx, filter)
}

// States lists the states with at least one shared route, for the filter UI.
func (s *BusRouteService) States(ctx context.Context) ([]string, error) {
	return s.routes.DistinctStates(ctx)
}

func (s *BusRouteService) Districts(ctx context.Context, state string) ([]string, error) {
	return s.routes.DistinctDistricts(ctx, state)
}
