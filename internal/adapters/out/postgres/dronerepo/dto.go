// Package dronerepo provides data transfer objects and mapping functions for drone persistence.
// This package implements the repository pattern for the drone domain aggregate, handling
// the conversion between domain entities and database representations.
package dronerepo

import (
	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// Indexed by restaurant and status to serve the auto-assignment sweep, which
// lists idle drones per restaurant on every pass.
type DroneDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code              string    `gorm:"uniqueIndex"`
	RestaurantID      uuid.UUID `gorm:"type:uuid;index"`
	Status            int       `gorm:"index"`
	BatteryLevel      int
	Capacity          int
	CurrentLocationID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for drone entities.
func (DroneDTO) TableName() string {
	return "drones"
}

// fromDomain converts a drone domain aggregate to its database representation.
func fromDomain(aggregate *drone.Drone) DroneDTO {
	var locationID *uuid.UUID
	if id := aggregate.CurrentLocationID(); id != nil {
		raw := id.Bytes()
		locationID = &raw
	}

	return DroneDTO{
		ID:                aggregate.ID().Bytes(),
		Code:              aggregate.Code(),
		RestaurantID:      aggregate.RestaurantID().Bytes(),
		Status:            int(aggregate.Status()),
		BatteryLevel:      aggregate.BatteryLevel(),
		Capacity:          aggregate.Capacity(),
		CurrentLocationID: locationID,
	}
}

// toDomain converts a database DTO to a drone domain aggregate using RestoreDrone.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var locationID *kernel.UUID
	if dto.CurrentLocationID != nil {
		lID, locationErr := kernel.UUIDFromBytes((*dto.CurrentLocationID)[:])
		if locationErr != nil {
			return nil, locationErr
		}

		locationID = &lID
	}

	return drone.RestoreDrone(
		id,
		dto.Code,
		restaurantID,
		drone.Status(dto.Status),
		dto.BatteryLevel,
		dto.Capacity,
		locationID,
	)
}
