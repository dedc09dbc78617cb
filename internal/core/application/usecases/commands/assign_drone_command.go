package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignDroneCommandIsNotConstructed = errors.New(
	"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
)

// AssignDroneCommand represents a request to dispatch a specific drone to a
// specific order. This is the manual assignment path: an operator picks the
// pair, the handler checks every precondition and executes the assignment.
//
// Example:
//
//	cmd, err := NewAssignDroneCommand(droneID, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignDroneCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to dispatch a drone to an order.
// Both identifiers must be valid UUIDs.
func NewAssignDroneCommand(droneID kernel.UUID, orderID kernel.UUID) (AssignDroneCommand, error) {
	command := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setOrderID(orderID),
	); err != nil {
		return AssignDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDroneCommandIsNotConstructed if validation fails.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// DroneID returns the drone to dispatch.
func (c AssignDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// OrderID returns the order to deliver.
func (c AssignDroneCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *AssignDroneCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
