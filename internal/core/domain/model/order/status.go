package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a food order.
//
// State transitions:
//
//	Pending ──> Preparing ──> Delivering ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Pending→Preparing is driven by the order service, Preparing→Delivering by
// drone assignment, and Delivering→Completed by customer confirmation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order awaiting the kitchen.
	Pending

	// Preparing indicates the restaurant accepted the order and is preparing
	// it. Only preparing orders are eligible for drone assignment.
	Preparing

	// Delivering indicates a drone has been assigned and the order is on its
	// way to the customer.
	Delivering

	// Completed indicates the customer confirmed receipt. Final state.
	Completed

	// Cancelled indicates the order was withdrawn before dispatch. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Preparing:  "Preparing",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Preparing:  "Preparing",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status value is one of the defined states.
// Used when rehydrating orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StartPreparing transitions the status to Preparing.
// Only pending orders may enter preparation.
func (s Status) StartPreparing() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s.String()),
		)
	}

	return Preparing, nil
}

// BeginDelivery transitions the status to Delivering.
// Only preparing orders may be handed to a drone.
func (s Status) BeginDelivery() (Status, error) {
	if s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to begin delivery", s.String()),
		)
	}

	return Delivering, nil
}

// Complete transitions the status to Completed.
// Only delivering orders may be confirmed as received.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Orders can only be withdrawn before a drone is dispatched.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Preparing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
