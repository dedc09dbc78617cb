package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAutoAssignCommandIsNotConstructed = errors.New(
	"AutoAssignCommand must be created via NewAutoAssignCommand constructor",
)

// AutoAssignCommand triggers one assignment sweep: every restaurant's
// preparing orders are paired with its idle drones by position and each pair
// is assigned independently.
//
// Example:
//
//	cmd := NewAutoAssignCommand()
//	results, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("sweep aborted: %v", err)
//	}
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("pair %s/%s failed: %v", r.OrderID, r.DroneID, r.Err)
//	    }
//	}
type AutoAssignCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignCommand creates a new command to trigger an assignment sweep.
// This is a parameterless command; the handler discovers the work itself.
func NewAutoAssignCommand() AutoAssignCommand {
	return AutoAssignCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignCommandIsNotConstructed if validation fails.
func (c *AutoAssignCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCommandIsNotConstructed)
}
