package http

import "time"

// Error is the uniform error body for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AssignRequest asks for a manual drone-to-order assignment.
type AssignRequest struct {
	DroneID string `json:"droneId"`
	OrderID string `json:"orderId"`
}

// AssignResponse summarizes a committed manual assignment.
type AssignResponse struct {
	DeliveryID string `json:"deliveryId"`
	OrderID    string `json:"orderId"`
	Drone      Drone  `json:"drone"`
}

// ConfirmRequest confirms receipt of a delivered order.
type ConfirmRequest struct {
	OrderID string `json:"orderId"`
}

// CreateDroneRequest registers a new drone for a restaurant.
type CreateDroneRequest struct {
	Code         string `json:"code"`
	RestaurantID string `json:"restaurantId"`
	Capacity     int    `json:"capacity"`
}

// AssignmentDetail reports the outcome of one auto-assigned pair.
type AssignmentDetail struct {
	OrderID string `json:"orderId"`
	DroneID string `json:"droneId"`
	Error   string `json:"error,omitempty"`
}

// AutoAssignResponse summarizes one assignment sweep.
type AutoAssignResponse struct {
	Assigned int                `json:"assigned"`
	Details  []AssignmentDetail `json:"details"`
}

// ActiveDelivery is one in-flight delivery with the drone's live position.
type ActiveDelivery struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	DroneID   string    `json:"droneId"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
	DroneLat  *float64  `json:"droneLat,omitempty"`
	DroneLng  *float64  `json:"droneLng,omitempty"`
}

// Drone is one drone in a restaurant fleet listing.
type Drone struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Status       string   `json:"status"`
	BatteryLevel int      `json:"batteryLevel"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}
