package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetRestaurantDronesQueryIsNotConstructed = errors.New(
	"GetRestaurantDronesQuery must be created via NewGetRestaurantDronesQuery constructor",
)

// GetRestaurantDronesQuery retrieves a restaurant's entire fleet with live
// positions, regardless of drone status.
//
// Example:
//
//	query, err := NewGetRestaurantDronesQuery(restaurantID)
//	if err != nil {
//	    return fmt.Errorf("invalid fleet query: %w", err)
//	}
//	drones, err := handler.Handle(ctx, query)
type GetRestaurantDronesQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantDronesQuery creates a query for a restaurant's fleet.
func NewGetRestaurantDronesQuery(restaurantID kernel.UUID) (GetRestaurantDronesQuery, error) {
	query := GetRestaurantDronesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetRestaurantDronesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantDronesQueryIsNotConstructed if validation fails.
func (q GetRestaurantDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantDronesQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose fleet is requested.
func (q GetRestaurantDronesQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetRestaurantDronesQuery) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.restaurantID = id
	return nil
}

// GetRestaurantDronesQueryResponse represents one drone in a fleet listing.
// Lat and Lng are nil for drones that have never flown.
type GetRestaurantDronesQueryResponse struct {
	ID           kernel.UUID
	Code         string
	Status       string
	BatteryLevel int
	Lat          *float64
	Lng          *float64
}
