// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and restaurant.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryID      *uuid.UUID `gorm:"type:uuid;index"`
	Status          int        `gorm:"index"`
	ArrivedNotified bool
	DeliveryAddress string
	DropoffLat      *float64
	DropoffLng      *float64
	CreatedAt       int64 `gorm:"autoCreateTime:nano"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Optional delivery binding and dropoff coordinates map to nullable columns.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryID *uuid.UUID
	if id := aggregate.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	var dropoffLat, dropoffLng *float64
	if point := aggregate.DropoffPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dropoffLat, dropoffLng = &lat, &lng
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DeliveryID:      deliveryID,
		Status:          int(aggregate.Status()),
		ArrivedNotified: aggregate.ArrivedNotified(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DropoffLat:      dropoffLat,
		DropoffLng:      dropoffLng,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and delivery binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		deliveryID = &dID
	}

	var dropoffPoint *kernel.GeoPoint
	if dto.DropoffLat != nil && dto.DropoffLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DropoffLat, *dto.DropoffLng)
		if pointErr != nil {
			return nil, pointErr
		}

		dropoffPoint = &point
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		order.Status(dto.Status),
		deliveryID,
		dto.ArrivedNotified,
		dto.DeliveryAddress,
		dropoffPoint,
	)
}
