// Package queries contains read-only operations for the dispatch system.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL, bypassing the aggregate repositories.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves all deliveries still occupying a drone.
// Returns trips in OnTheWay or Arrived status for dispatch monitoring.
//
// Example:
//
//	query := NewGetActiveDeliveriesQuery()
//	handler := NewGetActiveDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active deliveries: %w", err)
//	}
//	fmt.Printf("%d drones in the air\n", len(deliveries))
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve active deliveries.
// This is a parameterless query that fetches all non-completed trips.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveDeliveriesQueryIsNotConstructed if validation fails.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse represents one in-flight delivery.
// DroneLat and DroneLng carry the drone's live position and are nil when the
// drone has no position record yet.
type GetActiveDeliveriesQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	DroneID   kernel.UUID
	Status    string
	StartedAt time.Time
	DroneLat  *float64
	DroneLng  *float64
}
