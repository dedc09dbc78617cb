package ports

import (
	"context"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	// Add persists a new drone aggregate to storage.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAllIdleByRestaurant retrieves the idle drones of a restaurant,
	// ordered by code. Used by the auto-assignment sweep.
	GetAllIdleByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*drone.Drone, error)

	// GetAllByRestaurant retrieves every drone of a restaurant regardless of
	// status, ordered by code.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*drone.Drone, error)
}
