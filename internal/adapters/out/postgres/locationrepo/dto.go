// Package locationrepo provides data transfer objects and mapping functions for
// location persistence. Location rows carry the live drone coordinates the
// movement scheduler rewrites on every tick.
package locationrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind    int
	Lat     float64
	Lng     float64
	Address string
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location domain aggregate to its database representation.
func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:      aggregate.ID().Bytes(),
		Kind:    int(aggregate.Kind()),
		Lat:     aggregate.Point().Lat(),
		Lng:     aggregate.Point().Lng(),
		Address: aggregate.Address(),
	}
}

// toDomain converts a database DTO to a location domain aggregate using RestoreLocation.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(id, location.Kind(dto.Kind), point, dto.Address)
}
