package commands

import (
	"context"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// AssignmentResult records the outcome of one order-drone pair in a sweep.
// A nil Err means the pair was assigned and its flight launched.
type AssignmentResult struct {
	OrderID kernel.UUID
	DroneID kernel.UUID
	Err     error
}

// AutoAssignCommandHandler runs the periodic assignment sweep.
//
// The sweep reads every restaurant's preparing orders and idle drones in one
// snapshot, pairs them by position, and then delegates each pair to the
// manual assignment handler. Every pair runs in its own transaction, so one
// failed pair never blocks or unwinds the others; its error lands in the
// result slice and the sweep moves on.
type AutoAssignCommandHandler struct {
	uowFactory    UoWFactory
	assignHandler AssignDroneCommandHandler
}

// NewAutoAssignCommandHandler creates a handler for sweep operations.
// Requires the manual assignment handler it delegates each pair to.
func NewAutoAssignCommandHandler(
	uowFactory UoWFactory,
	assignHandler AssignDroneCommandHandler,
) AutoAssignCommandHandler {
	return AutoAssignCommandHandler{
		uowFactory:    uowFactory,
		assignHandler: assignHandler,
	}
}

type assignmentPair struct {
	orderID kernel.UUID
	droneID kernel.UUID
}

// Handle processes one sweep.
// Returns one result per attempted pair; the error return covers only the
// sweep itself (snapshot reads), never individual pair failures.
func (h AutoAssignCommandHandler) Handle(ctx context.Context, command AutoAssignCommand) ([]AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	pairs, err := h.collectPairs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]AssignmentResult, 0, len(pairs))
	for _, pair := range pairs {
		results = append(results, AssignmentResult{
			OrderID: pair.orderID,
			DroneID: pair.droneID,
			Err:     h.assignPair(ctx, pair),
		})
	}

	return results, nil
}

// collectPairs snapshots the pairable work in a read-only transaction.
// The snapshot may be stale by the time a pair is assigned; the assignment
// handler re-checks every precondition against current state, so a stale
// pair simply fails its own assignment.
func (h AutoAssignCommandHandler) collectPairs(ctx context.Context) ([]assignmentPair, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	preparingOrders, err := uow.OrderRepository().GetAllInPreparingStatus(ctx)
	if err != nil {
		return nil, err
	}

	ordersByRestaurant := make(map[kernel.UUID][]*order.Order)
	for _, ord := range preparingOrders {
		ordersByRestaurant[ord.RestaurantID()] = append(ordersByRestaurant[ord.RestaurantID()], ord)
	}

	dispatcher := services.NewFleetDispatcher()

	var pairs []assignmentPair
	for _, rest := range restaurants {
		orders := ordersByRestaurant[rest.ID()]
		if len(orders) == 0 {
			continue
		}

		var drones []*drone.Drone
		drones, err = uow.DroneRepository().GetAllIdleByRestaurant(ctx, rest.ID())
		if err != nil {
			return nil, err
		}

		for _, matched := range dispatcher.Pair(orders, drones) {
			pairs = append(pairs, assignmentPair{
				orderID: matched.Order.ID(),
				droneID: matched.Drone.ID(),
			})
		}
	}

	return pairs, nil
}

func (h AutoAssignCommandHandler) assignPair(ctx context.Context, pair assignmentPair) error {
	cmd, err := NewAssignDroneCommand(pair.droneID, pair.orderID)
	if err != nil {
		return err
	}

	_, err = h.assignHandler.Handle(ctx, cmd)
	return err
}
