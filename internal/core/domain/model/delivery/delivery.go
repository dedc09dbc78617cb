package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrStartedAtIsRequired is returned when creating a delivery without a
	// start timestamp.
	ErrStartedAtIsRequired = errs.NewValueIsRequiredError("startedAt")
)

// Delivery is the durable record of a single drone-order pairing's trip.
// It is created once per assignment; orderID and droneID are immutable after
// creation. At most one non-completed delivery exists per drone at a time —
// the movement scheduler preserves this by cancelling any prior flight for
// the drone before starting a new one.
type Delivery struct {
	id                kernel.UUID
	orderID           kernel.UUID
	droneID           kernel.UUID
	pickupLocationID  kernel.UUID
	dropoffLocationID *kernel.UUID
	status            Status
	startedAt         time.Time
	completedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery for a fresh assignment.
// Per the assignment flow the delivery is born OnTheWay: the drone is
// dispatched as part of the same operation that creates the record.
//
// dropoffLocationID may be nil when the order carries no delivery
// coordinates; the flight simulation then has nowhere to fly and quietly
// declines to start.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	droneID kernel.UUID,
	pickupLocationID kernel.UUID,
	dropoffLocationID *kernel.UUID,
	startedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status: OnTheWay,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDroneID(droneID),
		d.setPickupLocationID(pickupLocationID),
		d.setDropoffLocationID(dropoffLocationID),
		d.setStartedAt(startedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	droneID kernel.UUID,
	pickupLocationID kernel.UUID,
	dropoffLocationID *kernel.UUID,
	status Status,
	startedAt time.Time,
	completedAt *time.Time,
) (*Delivery, error) {
	d := &Delivery{
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDroneID(droneID),
		d.setPickupLocationID(pickupLocationID),
		d.setDropoffLocationID(dropoffLocationID),
		d.setStatus(status),
		d.setStartedAt(startedAt),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the fulfilled order's identifier. Immutable.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DroneID returns the assigned drone's identifier. Immutable.
func (d *Delivery) DroneID() kernel.UUID {
	return d.droneID
}

// PickupLocationID returns the restaurant-side Location reference.
func (d *Delivery) PickupLocationID() kernel.UUID {
	return d.pickupLocationID
}

// DropoffLocationID returns the customer-side Location reference, or nil
// when the order was assigned without delivery coordinates.
func (d *Delivery) DropoffLocationID() *kernel.UUID {
	return d.dropoffLocationID
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// StartedAt returns the assignment timestamp.
func (d *Delivery) StartedAt() time.Time {
	return d.startedAt
}

// CompletedAt returns the confirmation timestamp, or nil while the delivery
// is active.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// IsActive reports whether the delivery still occupies its drone.
func (d *Delivery) IsActive() bool {
	return d.status != Completed
}

// Arrive records that the drone reached the dropoff point.
// Set by the movement scheduler when the outbound route is exhausted.
func (d *Delivery) Arrive() error {
	newStatus, err := d.status.Arrive()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete records customer confirmation and stamps the completion time.
func (d *Delivery) Complete(at time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	d.status = newStatus
	d.completedAt = &at
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.droneID = id
	return nil
}

func (d *Delivery) setPickupLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.pickupLocationID = id
	return nil
}

func (d *Delivery) setDropoffLocationID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	d.dropoffLocationID = id
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setStartedAt(at time.Time) error {
	if at.IsZero() {
		return ErrStartedAtIsRequired
	}
	d.startedAt = at
	return nil
}
