package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// FlightStarter is the outbound port through which command handlers launch
// drone flight simulations. Implemented by the movement scheduler.
//
// Starting a flight is fire and forget from the caller's point of view: the
// assignment transaction has already committed, so a failed launch is logged
// by the caller and never unwinds the assignment.
type FlightStarter interface {
	// StartOutbound launches the pickup-to-dropoff simulation for the
	// drone's active delivery. Any flight already running for the drone is
	// cancelled first.
	StartOutbound(ctx context.Context, droneID kernel.UUID) error

	// StartReturn launches the dropoff-to-base simulation for a drone whose
	// delivery has completed. Any flight already running for the drone is
	// cancelled first.
	StartReturn(ctx context.Context, droneID kernel.UUID) error
}
