// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery records.
// The drone index serves the active-delivery lookup the movement scheduler and
// return-to-base flow both depend on.
type DeliveryDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID  `gorm:"type:uuid;index"`
	DroneID           uuid.UUID  `gorm:"type:uuid;index"`
	PickupLocationID  uuid.UUID  `gorm:"type:uuid"`
	DropoffLocationID *uuid.UUID `gorm:"type:uuid"`
	Status            int        `gorm:"index"`
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var dropoffLocationID *uuid.UUID
	if id := aggregate.DropoffLocationID(); id != nil {
		raw := id.Bytes()
		dropoffLocationID = &raw
	}

	return DeliveryDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		DroneID:           aggregate.DroneID().Bytes(),
		PickupLocationID:  aggregate.PickupLocationID().Bytes(),
		DropoffLocationID: dropoffLocationID,
		Status:            int(aggregate.Status()),
		StartedAt:         aggregate.StartedAt(),
		CompletedAt:       aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	droneID, err := kernel.UUIDFromBytes(dto.DroneID[:])
	if err != nil {
		return nil, err
	}

	pickupLocationID, err := kernel.UUIDFromBytes(dto.PickupLocationID[:])
	if err != nil {
		return nil, err
	}

	var dropoffLocationID *kernel.UUID
	if dto.DropoffLocationID != nil {
		dID, dropoffErr := kernel.UUIDFromBytes((*dto.DropoffLocationID)[:])
		if dropoffErr != nil {
			return nil, dropoffErr
		}

		dropoffLocationID = &dID
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		droneID,
		pickupLocationID,
		dropoffLocationID,
		delivery.Status(dto.Status),
		dto.StartedAt,
		dto.CompletedAt,
	)
}
