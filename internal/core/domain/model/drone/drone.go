package drone

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// BatteryLevelMin is the minimum valid battery charge percentage.
	BatteryLevelMin = 0
	// BatteryLevelMax is the maximum valid battery charge percentage.
	BatteryLevelMax = 100
)

// Domain errors for drone operations.
var (
	// ErrCodeIsRequired is returned when creating a drone without a call sign.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrDroneIsNotConstructed is returned when using an improperly
	// initialized Drone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
	// ErrDroneNotAvailable is returned when a non-idle drone is asked to
	// begin a delivery.
	ErrDroneNotAvailable = errors.New("drone not available")
)

// Drone represents a delivery drone operated by a restaurant. It is an
// aggregate root managing the drone's identity, operational status, and the
// pointer to its current Location record.
//
// Business rules:
//   - A drone belongs to exactly one restaurant and may only serve its orders
//   - A drone has at most one active delivery, enforced by requiring Idle
//     status before assignment
//   - The current location is a mutable pointer: the referenced Location
//     record is updated in place as the drone moves, never swapped
type Drone struct {
	id           kernel.UUID
	code         string
	restaurantID kernel.UUID
	status       Status

	// batteryLevel is the charge percentage, 0..100.
	batteryLevel int

	// capacity is the payload limit in arbitrary cargo units.
	capacity int

	// currentLocationID points at the drone's Location record (nil until the
	// drone first takes off, when it is seeded with the pickup point).
	currentLocationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDrone registers a new drone for a restaurant.
// The drone starts Idle with no current location; its first assignment seeds
// the location at the restaurant's pickup point.
//
// Parameters:
//   - id: unique identifier for the drone
//   - code: unique human-readable call sign (must be non-empty)
//   - restaurantID: the operating restaurant
//   - batteryLevel: charge percentage within [0, 100]
//   - capacity: payload limit (must be positive)
func NewDrone(
	id kernel.UUID,
	code string,
	restaurantID kernel.UUID,
	batteryLevel int,
	capacity int,
) (*Drone, error) {
	drone := &Drone{
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drone.setID(id),
		drone.setCode(code),
		drone.setRestaurantID(restaurantID),
		drone.setBatteryLevel(batteryLevel),
		drone.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return drone, nil
}

// RestoreDrone reconstructs a Drone from persistent storage, preserving its
// persisted status and location pointer.
func RestoreDrone(
	id kernel.UUID,
	code string,
	restaurantID kernel.UUID,
	status Status,
	batteryLevel int,
	capacity int,
	currentLocationID *kernel.UUID,
) (*Drone, error) {
	drone := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drone.setID(id),
		drone.setCode(code),
		drone.setRestaurantID(restaurantID),
		drone.setStatus(status),
		drone.setBatteryLevel(batteryLevel),
		drone.setCapacity(capacity),
		drone.setCurrentLocationID(currentLocationID),
	); err != nil {
		return nil, err
	}

	return drone, nil
}

// Validate ensures the Drone was created through a constructor.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares two drones by their unique identifiers.
func (d *Drone) IsEqual(other *Drone) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the drone's unique identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// Code returns the drone's call sign.
func (d *Drone) Code() string {
	return d.code
}

// RestaurantID returns the identifier of the operating restaurant.
func (d *Drone) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Status returns the drone's operational status.
func (d *Drone) Status() Status {
	return d.status
}

// BatteryLevel returns the charge percentage.
func (d *Drone) BatteryLevel() int {
	return d.batteryLevel
}

// Capacity returns the payload limit.
func (d *Drone) Capacity() int {
	return d.capacity
}

// CurrentLocationID returns the drone's Location pointer, or nil if the
// drone has never flown.
func (d *Drone) CurrentLocationID() *kernel.UUID {
	return d.currentLocationID
}

// ServesRestaurant reports whether the drone belongs to the given restaurant.
func (d *Drone) ServesRestaurant(restaurantID kernel.UUID) bool {
	return d.restaurantID.IsEqual(restaurantID)
}

// BeginDelivery marks the drone as delivering.
// Only idle drones may take a delivery; anything else fails with
// ErrDroneNotAvailable. This precondition is what enforces "at most one
// active delivery per drone".
func (d *Drone) BeginDelivery() error {
	if d.status != Idle {
		return ErrDroneNotAvailable
	}

	d.status = Delivering
	return nil
}

// ReturnToIdle brings the drone back into the assignable pool.
// Called when the return-to-base flight lands, or when the drone leaves
// charging or maintenance.
func (d *Drone) ReturnToIdle() error {
	if d.status == Idle {
		return nil
	}
	if err := d.status.Validate(); err != nil {
		return err
	}

	d.status = Idle
	return nil
}

// BeginCharging docks the drone for recharging. Only idle drones can charge.
func (d *Drone) BeginCharging() error {
	if d.status != Idle {
		return ErrDroneNotAvailable
	}

	d.status = Charging
	return nil
}

// GroundForMaintenance takes an idle drone out of service.
func (d *Drone) GroundForMaintenance() error {
	if d.status != Idle {
		return ErrDroneNotAvailable
	}

	d.status = Maintenance
	return nil
}

// AssignLocation sets the drone's current Location pointer.
// Used when the drone first takes off and its Location record is created at
// the pickup point.
func (d *Drone) AssignLocation(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	d.currentLocationID = &locationID
	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	d.code = code
	return nil
}

func (d *Drone) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.restaurantID = id
	return nil
}

func (d *Drone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Drone) setBatteryLevel(level int) error {
	if level < BatteryLevelMin || level > BatteryLevelMax {
		return errs.NewValueIsOutOfRangeError("batteryLevel", level, BatteryLevelMin, BatteryLevelMax)
	}
	d.batteryLevel = level
	return nil
}

func (d *Drone) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("capacity must be greater than 0")
	}
	d.capacity = capacity
	return nil
}

func (d *Drone) setCurrentLocationID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	d.currentLocationID = id
	return nil
}
