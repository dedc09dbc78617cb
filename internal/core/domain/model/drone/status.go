package drone

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the operational state of a drone.
//
// State transitions:
//
//	Idle ──> Delivering ──> Idle
//	Idle <──> Charging
//	Idle <──> Maintenance
//
// Only idle drones are eligible for assignment. Idle→Delivering is driven by
// the assignment engine; Delivering→Idle by the return-to-base flight.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Idle means the drone is docked at its restaurant and available for
	// assignment.
	Idle

	// Delivering means the drone is bound to an active delivery.
	Delivering

	// Charging means the drone is recharging and unavailable.
	Charging

	// Maintenance means the drone is grounded for service.
	Maintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Idle:        "Idle",
		Delivering:  "Delivering",
		Charging:    "Charging",
		Maintenance: "Maintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:        "Idle",
		Delivering:  "Delivering",
		Charging:    "Charging",
		Maintenance: "Maintenance",
	}
}

// Validate checks that the Status value is one of the defined states.
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
