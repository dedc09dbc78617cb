package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDroneNotFound = errors.New("drone not found")
)

// AssignDroneResult summarizes a committed assignment: the delivery it
// created, the order it claimed, and the drone as it left the transaction.
type AssignDroneResult struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	Drone      *drone.Drone
}

// AssignDroneCommandHandler executes a manual drone-to-order assignment.
// Checks every precondition, records the delivery, and updates the order and
// drone states within a single transaction. After the transaction commits it
// hands the drone to the flight scheduler.
//
// Assignment can fail for five distinct reasons, surfaced as distinct errors:
//
//	ErrOrderNotFound                  - no such order
//	services.ErrOrderNotPreparable    - order is not being prepared
//	ErrDroneNotFound                  - no such drone
//	drone.ErrDroneNotAvailable        - drone is busy, charging, or grounded
//	services.ErrRestaurantMismatch    - drone serves another restaurant
//
// Launching the flight is deliberately outside the transaction: the
// assignment is durable once committed, and a scheduler hiccup is logged
// rather than unwinding it.
type AssignDroneCommandHandler struct {
	uowFactory    UoWFactory
	flightStarter ports.FlightStarter
	logger        *slog.Logger
}

// NewAssignDroneCommandHandler creates a handler for manual assignment operations.
func NewAssignDroneCommandHandler(
	uowFactory UoWFactory,
	flightStarter ports.FlightStarter,
	logger *slog.Logger,
) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory:    uowFactory,
		flightStarter: flightStarter,
		logger:        logger.With("component", "assign_drone_handler"),
	}
}

// Handle processes the assignment command.
// Loads the order and drone, verifies the restaurant constraint, creates the
// delivery record, and seeds the location records the flight needs. All
// writes happen in one transaction; the flight launch follows the commit.
// Returns a summary of the committed assignment.
func (h AssignDroneCommandHandler) Handle(
	ctx context.Context,
	command AssignDroneCommand,
) (AssignDroneResult, error) {
	if err := command.Validate(); err != nil {
		return AssignDroneResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDroneResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()
	locationRepo := uow.LocationRepository()

	ord, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignDroneResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignDroneResult{}, err
	}

	drn, err := droneRepo.Get(ctx, command.DroneID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignDroneResult{}, ErrDroneNotFound
	}
	if err != nil {
		return AssignDroneResult{}, err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, ord.RestaurantID())
	if err != nil {
		return AssignDroneResult{}, err
	}

	// The customer-side location only exists when the order carries
	// coordinates. Without it the assignment still succeeds; the flight
	// simulation just has nowhere to fly.
	var dropoffLocationID *kernel.UUID
	if point := ord.DropoffPoint(); point != nil {
		dropoffLoc, locErr := location.NewLocation(
			kernel.NewUUID(), location.KindCustomer, *point, ord.DeliveryAddress())
		if locErr != nil {
			return AssignDroneResult{}, locErr
		}

		if err = locationRepo.Add(ctx, dropoffLoc); err != nil {
			return AssignDroneResult{}, err
		}

		id := dropoffLoc.ID()
		dropoffLocationID = &id
	}

	dlv, err := services.NewFleetDispatcher().Assign(
		ord, drn, rest.LocationID(), dropoffLocationID, time.Now().UTC())
	if err != nil {
		return AssignDroneResult{}, err
	}

	// A drone's first assignment seeds its live position at the
	// restaurant's pickup point.
	if drn.CurrentLocationID() == nil {
		pickupLoc, locErr := locationRepo.Get(ctx, rest.LocationID())
		if locErr != nil {
			return AssignDroneResult{}, locErr
		}

		droneLoc, locErr := location.NewLocation(
			kernel.NewUUID(), location.KindDrone, pickupLoc.Point(), "")
		if locErr != nil {
			return AssignDroneResult{}, locErr
		}

		if err = locationRepo.Add(ctx, droneLoc); err != nil {
			return AssignDroneResult{}, err
		}

		if err = drn.AssignLocation(droneLoc.ID()); err != nil {
			return AssignDroneResult{}, err
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, dlv); err != nil {
		return AssignDroneResult{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return AssignDroneResult{}, err
	}

	if err = droneRepo.Update(ctx, drn); err != nil {
		return AssignDroneResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDroneResult{}, err
	}

	h.launchFlight(ctx, command.DroneID())

	return AssignDroneResult{
		DeliveryID: dlv.ID(),
		OrderID:    ord.ID(),
		Drone:      drn,
	}, nil
}

// launchFlight hands the drone to the scheduler without blocking the caller.
// Errors are logged only; the committed assignment stands regardless.
func (h AssignDroneCommandHandler) launchFlight(ctx context.Context, droneID kernel.UUID) {
	flightCtx := context.WithoutCancel(ctx)

	go func() {
		if err := h.flightStarter.StartOutbound(flightCtx, droneID); err != nil {
			h.logger.ErrorContext(flightCtx, "Failed to start outbound flight",
				"drone_id", droneID.String(), "error", err)
		}
	}()
}
