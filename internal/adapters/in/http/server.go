// Package http exposes the dispatch operations over a REST API.
// It coordinates between HTTP handlers and application use cases, mapping
// domain failures to status codes: unknown aggregates become 404, violated
// assignment preconditions become 409, malformed input becomes 400.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server implements the REST surface for dispatch operations.
type Server struct {
	// Command handlers
	assignDroneHandler     commands.AssignDroneCommandHandler
	autoAssignHandler      commands.AutoAssignCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	createDroneHandler     commands.CreateDroneCommandHandler

	// Query handlers
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getRestaurantDronesHandler queries.GetRestaurantDronesQueryHandler

	// flightStarter serves the return-to-base capability endpoint.
	flightStarter ports.FlightStarter
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignDroneHandler commands.AssignDroneCommandHandler,
	autoAssignHandler commands.AutoAssignCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	createDroneHandler commands.CreateDroneCommandHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getRestaurantDronesHandler queries.GetRestaurantDronesQueryHandler,
	flightStarter ports.FlightStarter,
) *Server {
	return &Server{
		assignDroneHandler:         assignDroneHandler,
		autoAssignHandler:          autoAssignHandler,
		confirmDeliveryHandler:     confirmDeliveryHandler,
		createDroneHandler:         createDroneHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		getRestaurantDronesHandler: getRestaurantDronesHandler,
		flightStarter:              flightStarter,
	}
}

// RegisterRoutes installs every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries/assign", s.AssignDrone)
	api.POST("/deliveries/auto-assign", s.AutoAssign)
	api.POST("/deliveries/confirm", s.ConfirmDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)

	api.POST("/drones", s.CreateDrone)
	api.POST("/drones/:droneId/return-to-base", s.ReturnToBase)

	api.GET("/restaurants/:restaurantId/drones", s.GetRestaurantDrones)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// AssignDrone handles POST /api/v1/deliveries/assign - manual assignment.
func (s *Server) AssignDrone(ctx echo.Context) error {
	var req AssignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	droneID, err := kernel.UUIDFromString(req.DroneID)
	if err != nil {
		return badRequest(ctx, "Invalid drone ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewAssignDroneCommand(droneID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	result, handleErr := s.assignDroneHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		metrics.AssignmentsTotal.WithLabelValues("failure").Inc()
		return assignmentError(ctx, handleErr)
	}

	metrics.AssignmentsTotal.WithLabelValues("success").Inc()
	return ctx.JSON(http.StatusOK, AssignResponse{
		DeliveryID: result.DeliveryID.String(),
		OrderID:    result.OrderID.String(),
		Drone: Drone{
			ID:           result.Drone.ID().String(),
			Code:         result.Drone.Code(),
			Status:       result.Drone.Status().String(),
			BatteryLevel: result.Drone.BatteryLevel(),
		},
	})
}

// AutoAssign handles POST /api/v1/deliveries/auto-assign - one assignment sweep.
func (s *Server) AutoAssign(ctx echo.Context) error {
	cmd := commands.NewAutoAssignCommand()

	results, err := s.autoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to run assignment sweep")
	}

	response := AutoAssignResponse{Details: make([]AssignmentDetail, 0, len(results))}
	for _, result := range results {
		detail := AssignmentDetail{
			OrderID: result.OrderID.String(),
			DroneID: result.DroneID.String(),
		}

		if result.Err != nil {
			metrics.AssignmentsTotal.WithLabelValues("failure").Inc()
			detail.Error = result.Err.Error()
		} else {
			metrics.AssignmentsTotal.WithLabelValues("success").Inc()
			response.Assigned++
		}

		response.Details = append(response.Details, detail)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmDelivery handles POST /api/v1/deliveries/confirm - customer confirmation.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	var req ConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, commands.ErrOrderNotFound):
			return notFound(ctx, handleErr.Error())
		case errors.Is(handleErr, commands.ErrOrderHasNoDelivery):
			return conflict(ctx, handleErr.Error())
		default:
			return conflict(ctx, "Failed to confirm delivery: "+handleErr.Error())
		}
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateDrone handles POST /api/v1/drones - registers a drone.
func (s *Server) CreateDrone(ctx echo.Context) error {
	var req CreateDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID: "+err.Error())
	}

	cmd, err := commands.NewCreateDroneCommand(req.Code, restaurantID, req.Capacity)
	if err != nil {
		return badRequest(ctx, "Invalid drone data: "+err.Error())
	}

	if handleErr := s.createDroneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrRestaurantNotFound) {
			return notFound(ctx, handleErr.Error())
		}
		return conflict(ctx, "Failed to register drone")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ReturnToBase handles POST /api/v1/drones/:droneId/return-to-base.
// Launches the return flight and answers before the drone lands.
func (s *Server) ReturnToBase(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneId"))
	if err != nil {
		return badRequest(ctx, "Invalid drone ID: "+err.Error())
	}

	if startErr := s.flightStarter.StartReturn(ctx.Request().Context(), droneID); startErr != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(startErr, &notFoundErr) {
			return notFound(ctx, startErr.Error())
		}
		return internalError(ctx, "Failed to start return flight")
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve deliveries")
	}

	response := make([]ActiveDelivery, len(deliveries))
	for i, dlv := range deliveries {
		response[i] = ActiveDelivery{
			ID:        dlv.ID.String(),
			OrderID:   dlv.OrderID.String(),
			DroneID:   dlv.DroneID.String(),
			Status:    dlv.Status,
			StartedAt: dlv.StartedAt,
			DroneLat:  dlv.DroneLat,
			DroneLng:  dlv.DroneLng,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantDrones handles GET /api/v1/restaurants/:restaurantId/drones.
func (s *Server) GetRestaurantDrones(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID: "+err.Error())
	}

	query, err := queries.NewGetRestaurantDronesQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	drones, err := s.getRestaurantDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve drones")
	}

	response := make([]Drone, len(drones))
	for i, drn := range drones {
		response[i] = Drone{
			ID:           drn.ID.String(),
			Code:         drn.Code,
			Status:       drn.Status,
			BatteryLevel: drn.BatteryLevel,
			Lat:          drn.Lat,
			Lng:          drn.Lng,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// assignmentError maps the distinct assignment failures onto status codes.
func assignmentError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrDroneNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, services.ErrOrderNotPreparable),
		errors.Is(err, drone.ErrDroneNotAvailable),
		errors.Is(err, services.ErrRestaurantMismatch):
		return conflict(ctx, err.Error())
	default:
		return internalError(ctx, "Failed to assign drone")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
