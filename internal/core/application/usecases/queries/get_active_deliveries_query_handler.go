package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern, joining
// the drone's live position in the same round trip.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active deliveries.
// Returns trips that are not Completed, oldest first, each with the drone's
// current coordinates when a position record exists.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.drone_id,
			d.status,
			d.started_at,
			l.lat,
			l.lng
		FROM deliveries d
		JOIN drones dr ON dr.id = d.drone_id
		LEFT JOIN locations l ON l.id = dr.current_location_id
		WHERE d.status != ?
		ORDER BY d.started_at
	`, delivery.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID, droneID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&droneID,
			&status,
			&resp.StartedAt,
			&resp.DroneLat,
			&resp.DroneLng,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		resp.DroneID, err = kernel.UUIDFromBytes(droneID[:])
		if err != nil {
			return nil, err
		}

		resp.Status = delivery.Status(status).String()
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
