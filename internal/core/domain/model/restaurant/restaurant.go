// Package restaurant implements the Restaurant aggregate. The dispatch
// engine only needs the parts of a restaurant that matter for flight:
// its identity and the Location record serving as the pickup point.
package restaurant

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using an improperly
	// initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Restaurant owns a fleet of drones and a pickup Location.
type Restaurant struct {
	id         kernel.UUID
	name       string
	locationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant referencing its pickup Location.
func NewRestaurant(id kernel.UUID, name string, locationID kernel.UUID) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage.
func RestoreRestaurant(id kernel.UUID, name string, locationID kernel.UUID) (*Restaurant, error) {
	return NewRestaurant(id, name, locationID)
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// LocationID returns the pickup Location reference.
func (r *Restaurant) LocationID() kernel.UUID {
	return r.locationID
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.locationID = id
	return nil
}
