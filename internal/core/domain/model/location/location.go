package location

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when using an improperly
// initialized Location.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Kind classifies what a Location record belongs to.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindCustomer marks a delivery dropoff point.
	KindCustomer

	// KindRestaurant marks a restaurant's pickup point.
	KindRestaurant

	// KindDrone marks a drone's live position.
	KindDrone
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:    "Unknown",
		KindCustomer:   "Customer",
		KindRestaurant: "Restaurant",
		KindDrone:      "Drone",
	}
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if k != KindCustomer && k != KindRestaurant && k != KindDrone {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Location is a point record owned by whichever entity references it: a
// restaurant (pickup), a delivery's customer (dropoff), or a drone (live
// position). Unlike the other aggregates its coordinates are deliberately
// mutable: the movement scheduler rewrites the point in place on every tick
// rather than replacing the record. A Location is never deleted while
// referenced.
type Location struct {
	id      kernel.UUID
	kind    Kind
	point   kernel.GeoPoint
	address string

	guard guard.ConstructorGuard
}

// NewLocation creates a Location of the given kind at the given point.
// The address is optional; drone positions typically have none.
func NewLocation(id kernel.UUID, kind Kind, point kernel.GeoPoint, address string) (*Location, error) {
	loc := &Location{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setKind(kind),
		loc.setPoint(point),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a Location from persistent storage.
func RestoreLocation(id kernel.UUID, kind Kind, point kernel.GeoPoint, address string) (*Location, error) {
	return NewLocation(id, kind, point, address)
}

// Validate ensures the Location was created through a constructor.
func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsEqual compares two locations by their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Kind returns what the location belongs to.
func (l *Location) Kind() Kind {
	return l.kind
}

// Point returns the current coordinates.
func (l *Location) Point() kernel.GeoPoint {
	return l.point
}

// Address returns the human-readable address, possibly empty.
func (l *Location) Address() string {
	return l.address
}

// MoveTo rewrites the coordinates in place. This is the only mutation the
// movement scheduler performs per tick.
func (l *Location) MoveTo(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	l.point = point
	return nil
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	l.kind = kind
	return nil
}

func (l *Location) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	l.point = point
	return nil
}
