package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location records.
// Locations carry the live coordinates the movement scheduler mutates on
// every tick, so Update is the hottest write path in the system.
type LocationRepository interface {
	// Add persists a new location to storage.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location, including per-tick
	// coordinate writes.
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such location exists.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)
}
