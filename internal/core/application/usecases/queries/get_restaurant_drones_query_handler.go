package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
)

// GetRestaurantDronesQueryHandler retrieves a restaurant's fleet from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetRestaurantDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantDronesQueryHandler creates a handler for fleet queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantDronesQueryHandler(db *gorm.DB) GetRestaurantDronesQueryHandler {
	return GetRestaurantDronesQueryHandler{db: db}
}

// Handle executes the query to retrieve a restaurant's drones.
// Returns the fleet sorted by code, each drone with its live position when
// one exists.
func (h GetRestaurantDronesQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantDronesQuery,
) ([]GetRestaurantDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones := make([]GetRestaurantDronesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dr.id,
			dr.code,
			dr.status,
			dr.battery_level,
			l.lat,
			l.lng
		FROM drones dr
		LEFT JOIN locations l ON l.id = dr.current_location_id
		WHERE dr.restaurant_id = ?
		ORDER BY dr.code
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetRestaurantDronesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Code,
			&status,
			&resp.BatteryLevel,
			&resp.Lat,
			&resp.Lng,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		resp.Status = drone.Status(status).String()
		drones = append(drones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
