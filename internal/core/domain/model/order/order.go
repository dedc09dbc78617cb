package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveryAlreadyBound is returned when attempting to bind a second
	// delivery to an order. The delivery back-reference is set exactly once.
	ErrDeliveryAlreadyBound = errors.New("order is already bound to a delivery")

	// ErrDeliveryAddressIsRequired is returned when creating an order without
	// a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Order represents a food order in the dispatch system. It is an aggregate
// root managing the order lifecycle from placement through drone delivery to
// customer confirmation.
//
// Invariants:
//   - Must have valid identifiers for itself and its restaurant
//   - Must have a non-empty delivery address
//   - The delivery back-reference (deliveryID) is set exactly once, at
//     assignment time, and never reassigned
//   - Status transitions follow the rules defined on Status
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	status       Status

	// deliveryID references the delivery fulfilling this order (nil until
	// a drone is assigned).
	deliveryID *kernel.UUID

	// arrivedNotified is set by the movement scheduler once the drone
	// reaches the dropoff point.
	arrivedNotified bool

	deliveryAddress string

	// dropoffPoint holds the customer's delivery coordinates when known.
	// Orders without coordinates cannot be flown and stay unassignable to a
	// route (the assignment itself still succeeds; the flight aborts).
	dropoffPoint *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - restaurantID: the restaurant preparing the order
//   - deliveryAddress: human-readable destination address (must be non-empty)
//   - dropoffPoint: optional delivery coordinates
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	dropoffPoint *kernel.GeoPoint,
) (*Order, error) {
	order := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setDropoffPoint(dropoffPoint),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// persisted status, delivery binding, and notification flag.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	status Status,
	deliveryID *kernel.UUID,
	arrivedNotified bool,
	deliveryAddress string,
	dropoffPoint *kernel.GeoPoint,
) (*Order, error) {
	order := &Order{
		arrivedNotified: arrivedNotified,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setStatus(status),
		order.setDeliveryID(deliveryID),
		order.setDeliveryAddress(deliveryAddress),
		order.setDropoffPoint(dropoffPoint),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the identifier of the restaurant preparing the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryID returns the bound delivery's ID, or nil before assignment.
func (o *Order) DeliveryID() *kernel.UUID {
	return o.deliveryID
}

// ArrivedNotified reports whether the drone has reached the dropoff point.
func (o *Order) ArrivedNotified() bool {
	return o.arrivedNotified
}

// DeliveryAddress returns the human-readable destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DropoffPoint returns the delivery coordinates, or nil when unknown.
func (o *Order) DropoffPoint() *kernel.GeoPoint {
	return o.dropoffPoint
}

// StartPreparing moves the order into preparation.
// Called by the order service when the kitchen accepts the order.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// BeginDelivery binds the order to a delivery and moves it to Delivering.
//
// Business rules:
//   - The order must be in Preparing status
//   - The delivery binding is set exactly once; a second call fails with
//     ErrDeliveryAlreadyBound even if the status would allow it
func (o *Order) BeginDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if o.deliveryID != nil {
		return ErrDeliveryAlreadyBound
	}

	newStatus, err := o.status.BeginDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryID = &deliveryID
	return nil
}

// MarkArrived records that the drone reached the dropoff point.
// Set by the movement scheduler; it does not complete the order — customer
// confirmation does that.
func (o *Order) MarkArrived() error {
	if o.status != Delivering {
		return errs.NewValueIsInvalidError("order is not being delivered")
	}

	o.arrivedNotified = true
	return nil
}

// Complete marks the order as received by the customer. Final state.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order before dispatch. Final state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	o.deliveryID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDropoffPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}
	o.dropoffPoint = point
	return nil
}
