package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DefaultRouteSteps is the number of segments a planned route is divided into
// when the caller does not specify one.
const DefaultRouteSteps = 20

// RoutePlanner is a domain service producing flight paths between two points.
//
// A route is a straight line divided into equal segments. For a route of N
// steps the planner emits N+1 waypoints: the first is exactly the pickup
// point, the last is exactly the dropoff point, and the ones between are
// linear interpolations on both axes.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// PlanRoute builds the waypoint list from pickup to dropoff.
//
// Parameters:
//   - pickup: The departure point
//   - dropoff: The destination point
//   - steps: The number of segments; must be positive
//
// Returns:
//   - []kernel.GeoPoint: steps+1 waypoints, endpoints exact
//   - error: Validation errors for invalid points or a non-positive step count
func (p RoutePlanner) PlanRoute(pickup kernel.GeoPoint, dropoff kernel.GeoPoint, steps int) ([]kernel.GeoPoint, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	if err := dropoff.Validate(); err != nil {
		return nil, err
	}

	if steps <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("steps", steps, 1, int(^uint(0)>>1))
	}

	waypoints := make([]kernel.GeoPoint, 0, steps+1)
	waypoints = append(waypoints, pickup)

	for i := 1; i < steps; i++ {
		fraction := float64(i) / float64(steps)

		point, err := pickup.Interpolate(dropoff, fraction)
		if err != nil {
			return nil, err
		}

		waypoints = append(waypoints, point)
	}

	// The final waypoint is the dropoff itself, never an interpolation,
	// so accumulated floating point error cannot shift the destination.
	waypoints = append(waypoints, dropoff)

	return waypoints, nil
}
