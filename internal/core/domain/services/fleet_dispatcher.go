package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

var (
	// ErrOrderNotPreparable is returned when assigning a drone to an order
	// that is not currently being prepared.
	ErrOrderNotPreparable = errors.New("order not in a preparable state")

	// ErrRestaurantMismatch is returned when the drone and the order belong
	// to different restaurants.
	ErrRestaurantMismatch = errors.New("drone does not belong to this order's restaurant")
)

// AssignmentPair couples a preparing order with the idle drone chosen for it.
type AssignmentPair struct {
	Order *order.Order
	Drone *drone.Drone
}

// FleetDispatcher is a domain service responsible for pairing preparing orders
// with idle drones and executing the assignment workflow on both aggregates.
//
// Business rules:
//   - Only preparing orders are eligible for assignment
//   - Only idle drones may be dispatched
//   - A drone serves orders of its own restaurant exclusively
//   - Assignment produces exactly one Delivery per pair
//
// Example usage:
//
//	dispatcher := NewFleetDispatcher()
//	dlv, err := dispatcher.Assign(ord, drn, pickupID, dropoffID, time.Now())
//	if errors.Is(err, ErrRestaurantMismatch) {
//	    // Drone belongs to another restaurant
//	    return
//	}
type FleetDispatcher struct{}

// NewFleetDispatcher creates a new FleetDispatcher instance.
func NewFleetDispatcher() FleetDispatcher {
	return FleetDispatcher{}
}

// Assign dispatches a drone to an order and records the trip.
//
// Parameters:
//   - ord: The order to deliver (must be Preparing)
//   - drn: The drone to dispatch (must be Idle, same restaurant as the order)
//   - pickupLocationID: The restaurant-side Location the route departs from
//   - dropoffLocationID: The customer-side Location the route ends at, or
//     nil when the order has no delivery coordinates
//   - startedAt: The assignment timestamp
//
// Returns:
//   - *delivery.Delivery: The freshly created trip record, born OnTheWay
//   - error: ErrOrderNotPreparable, drone.ErrDroneNotAvailable,
//     ErrRestaurantMismatch, or validation errors
//
// On success the order moves to Delivering and the drone to Delivering; the
// caller persists all three aggregates in one transaction.
func (f FleetDispatcher) Assign(
	ord *order.Order,
	drn *drone.Drone,
	pickupLocationID kernel.UUID,
	dropoffLocationID *kernel.UUID,
	startedAt time.Time,
) (*delivery.Delivery, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	if err := drn.Validate(); err != nil {
		return nil, err
	}

	// Preconditions are checked before any aggregate is mutated, so a
	// failed assignment leaves both sides untouched.
	if ord.Status() != order.Preparing {
		return nil, ErrOrderNotPreparable
	}

	if drn.Status() != drone.Idle {
		return nil, drone.ErrDroneNotAvailable
	}

	if !drn.ServesRestaurant(ord.RestaurantID()) {
		return nil, ErrRestaurantMismatch
	}

	dlv, err := delivery.NewDelivery(
		kernel.NewUUID(),
		ord.ID(),
		drn.ID(),
		pickupLocationID,
		dropoffLocationID,
		startedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = drn.BeginDelivery(); err != nil {
		return nil, err
	}

	if err = ord.BeginDelivery(dlv.ID()); err != nil {
		return nil, err
	}

	return dlv, nil
}

// Pair matches preparing orders to idle drones by position: the i-th order
// goes to the i-th drone. No scoring or distance ranking is applied; the
// caller controls ordering by how it sorts the slices.
//
// Returns min(len(orders), len(drones)) pairs; leftovers on either side wait
// for the next sweep.
func (f FleetDispatcher) Pair(orders []*order.Order, drones []*drone.Drone) []AssignmentPair {
	n := len(orders)
	if len(drones) < n {
		n = len(drones)
	}

	pairs := make([]AssignmentPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, AssignmentPair{Order: orders[i], Drone: drones[i]})
	}

	return pairs
}
