package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDroneCommandIsNotConstructed = errors.New(
		"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
	)
	ErrCodeIsRequired    = errors.New("code is required")
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateDroneCommand represents a request to register a new drone for a
// restaurant's fleet. The drone starts Idle with a full battery and no live
// position; its first assignment seeds the position at the pickup point.
//
// Example:
//
//	cmd, err := NewCreateDroneCommand("DR-042", restaurantID, 5)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register drone: %w", err)
//	}
//	fmt.Printf("Registered drone with ID: %s", cmd.DroneID())
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID      kernel.UUID
	code         string
	restaurantID kernel.UUID
	capacity     int

	guard guard.ConstructorGuard
}

// NewCreateDroneCommand creates a command to register a new drone.
// Automatically generates a unique ID for the drone.
// Validates that the code is not empty and the capacity is positive.
func NewCreateDroneCommand(code string, restaurantID kernel.UUID, capacity int) (CreateDroneCommand, error) {
	command := CreateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(kernel.NewUUID()),
		command.setCode(code),
		command.setRestaurantID(restaurantID),
		command.setCapacity(capacity),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDroneCommandIsNotConstructed if validation fails.
func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

// DroneID returns the generated identifier of the drone to register.
func (c CreateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Code returns the drone call sign from the command.
func (c CreateDroneCommand) Code() string {
	return c.code
}

// RestaurantID returns the operating restaurant from the command.
func (c CreateDroneCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Capacity returns the payload limit from the command.
func (c CreateDroneCommand) Capacity() int {
	return c.capacity
}

func (c *CreateDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.droneID = id
	return nil
}

func (c *CreateDroneCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}

func (c *CreateDroneCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.restaurantID = id
	return nil
}

func (c *CreateDroneCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
