package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	// Add persists a new restaurant to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every registered restaurant, ordered by name.
	// Used by the auto-assignment sweep to walk restaurants one by one.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
