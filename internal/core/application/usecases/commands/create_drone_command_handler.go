package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/pkg/errs"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// CreateDroneCommandHandler registers new drones in a restaurant's fleet.
// Verifies the restaurant exists before persisting the drone.
type CreateDroneCommandHandler struct {
	uowFactory CreateDroneUoWFactory
}

// NewCreateDroneCommandHandler creates a handler for drone registration.
func NewCreateDroneCommandHandler(uowFactory CreateDroneUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone registration command.
// Returns ErrRestaurantNotFound when the operating restaurant does not exist.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, command CreateDroneCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRestaurantNotFound
	}
	if err != nil {
		return err
	}

	newDrone, err := drone.NewDrone(
		command.DroneID(),
		command.Code(),
		command.RestaurantID(),
		drone.BatteryLevelMax,
		command.Capacity(),
	)
	if err != nil {
		return err
	}

	if err = uow.DroneRepository().Add(ctx, newDrone); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
