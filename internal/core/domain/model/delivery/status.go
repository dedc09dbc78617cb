package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Waiting ──> OnTheWay ──> Arrived ──> Completed
//
// The assignment engine creates deliveries directly OnTheWay; the movement
// scheduler marks them Arrived; customer confirmation completes them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Waiting means the delivery exists but the drone has not departed.
	Waiting

	// OnTheWay means the drone is flying towards the dropoff point.
	OnTheWay

	// Arrived means the drone reached the dropoff point and awaits customer
	// confirmation.
	Arrived

	// Completed means the customer confirmed receipt. Final state.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Waiting:   "Waiting",
		OnTheWay:  "OnTheWay",
		Arrived:   "Arrived",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:   "Waiting",
		OnTheWay:  "OnTheWay",
		Arrived:   "Arrived",
		Completed: "Completed",
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

// Dispatch transitions the status to OnTheWay.
func (s Status) Dispatch() (Status, error) {
	if s != Waiting {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return OnTheWay, nil
}

// Arrive transitions the status to Arrived.
func (s Status) Arrive() (Status, error) {
	if s != OnTheWay {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to arrive", s.String()),
		)
	}

	return Arrived, nil
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	if s != Arrived {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
