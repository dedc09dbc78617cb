// Package movement runs the drone flight simulations.
//
// A flight is a background goroutine that walks a drone's Location along a
// precomputed route, one waypoint per tick. The scheduler keeps a registry of
// running flights keyed by drone, so starting a new flight for a drone that is
// already flying cancels the previous simulation first. Each tick persists the
// new coordinates in its own transaction; a failed tick is logged and the
// flight keeps going, so a transient database error costs one position update,
// not the whole trip.
package movement

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/metrics"
)

// DefaultTickInterval is the cadence at which a flight advances one waypoint.
const DefaultTickInterval = 3 * time.Second

type direction int

const (
	outbound direction = iota + 1
	returnToBase
)

func (d direction) String() string {
	if d == returnToBase {
		return "return"
	}
	return "outbound"
}

// flight is one running simulation. route[0] is the drone's position at
// launch; every tick moves the drone to the next waypoint.
type flight struct {
	droneID    kernel.UUID
	locationID kernel.UUID
	orderID    kernel.UUID
	deliveryID kernel.UUID
	direction  direction
	route      []kernel.GeoPoint
	cancel     chan struct{}
}

// FlightScheduler launches and tracks drone flight simulations. It implements
// ports.FlightStarter for the command handlers and exposes Stop/StopAll for
// manual intervention and shutdown.
type FlightScheduler struct {
	uowFactory ports.UnitOfWorkFactory
	planner    services.RoutePlanner
	clock      Clock
	interval   time.Duration
	steps      int
	logger     *slog.Logger

	mu      sync.Mutex
	flights map[kernel.UUID]*flight
	wg      sync.WaitGroup
}

// NewFlightScheduler creates a scheduler with the default tick interval and
// route resolution.
func NewFlightScheduler(
	uowFactory ports.UnitOfWorkFactory,
	clock Clock,
	logger *slog.Logger,
) *FlightScheduler {
	return &FlightScheduler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
		clock:      clock,
		interval:   DefaultTickInterval,
		steps:      services.DefaultRouteSteps,
		logger:     logger.With("component", "flight_scheduler"),
		flights:    make(map[kernel.UUID]*flight),
	}
}

// SetTickInterval overrides the cadence at which flights advance.
// Call before any flight starts; non-positive values are ignored.
func (s *FlightScheduler) SetTickInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// SetRouteSteps overrides the number of interpolation steps per route.
// Call before any flight starts; non-positive values are ignored.
func (s *FlightScheduler) SetRouteSteps(steps int) {
	if steps > 0 {
		s.steps = steps
	}
}

// StartOutbound launches the pickup-to-dropoff simulation for the drone's
// active delivery.
//
// Before the first tick the drone's Location is parked at the delivery's
// pickup point, so the trip always departs from the restaurant no matter
// where an earlier flight left the drone. The flight quietly does not start
// when the delivery carries no dropoff coordinates: the assignment stands,
// the drone simply stays put. Any flight already running for the drone is
// cancelled before the new one takes off.
func (s *FlightScheduler) StartOutbound(ctx context.Context, droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	f, err := s.prepareOutbound(ctx, droneID)
	if err != nil {
		return err
	}
	if f == nil {
		s.logger.Warn("Flight not started: delivery has no dropoff coordinates",
			"drone_id", droneID.String())
		return nil
	}

	s.launch(f)
	return nil
}

// StartReturn launches the simulation flying the drone back to its
// restaurant's pickup point. Quietly does nothing when the drone has no
// Location record. Any flight already running for the drone is cancelled
// first.
func (s *FlightScheduler) StartReturn(ctx context.Context, droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}

	f, err := s.prepareReturn(ctx, droneID)
	if err != nil {
		return err
	}
	if f == nil {
		s.logger.Warn("Return flight not started: drone has no location record",
			"drone_id", droneID.String())
		return nil
	}

	s.launch(f)
	return nil
}

// Stop cancels the drone's running flight, if any. The drone's Location stays
// wherever the last tick left it.
func (s *FlightScheduler) Stop(droneID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.flights[droneID]; ok {
		close(f.cancel)
		delete(s.flights, droneID)
	}
}

// StopAll cancels every running flight and waits for the simulation
// goroutines to finish. Used on shutdown.
func (s *FlightScheduler) StopAll() {
	s.mu.Lock()
	for droneID, f := range s.flights {
		close(f.cancel)
		delete(s.flights, droneID)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// ActiveFlightCount reports the number of registered flights.
func (s *FlightScheduler) ActiveFlightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flights)
}

// prepareOutbound loads the drone's active delivery, parks the drone at the
// pickup point, and plans the pickup-to-dropoff route. Returns a nil flight
// when the delivery has no dropoff coordinates.
func (s *FlightScheduler) prepareOutbound(ctx context.Context, droneID kernel.UUID) (*flight, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drn, err := uow.DroneRepository().Get(ctx, droneID)
	if err != nil {
		return nil, err
	}

	dlv, err := uow.DeliveryRepository().GetActiveByDrone(ctx, droneID)
	if err != nil {
		return nil, err
	}
	if dlv.DropoffLocationID() == nil {
		return nil, nil
	}

	pickup, err := uow.LocationRepository().Get(ctx, dlv.PickupLocationID())
	if err != nil {
		return nil, err
	}

	dropoff, err := uow.LocationRepository().Get(ctx, *dlv.DropoffLocationID())
	if err != nil {
		return nil, err
	}

	locationID, err := s.parkAtPickup(ctx, uow, drn, pickup)
	if err != nil {
		return nil, err
	}

	route, err := s.planner.PlanRoute(pickup.Point(), dropoff.Point(), s.steps)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &flight{
		droneID:    droneID,
		locationID: locationID,
		orderID:    dlv.OrderID(),
		deliveryID: dlv.ID(),
		direction:  outbound,
		route:      route,
		cancel:     make(chan struct{}),
	}, nil
}

// parkAtPickup moves the drone's Location to the pickup point so the first
// visible position of the trip is the restaurant. A drone that never flew
// gets a fresh drone-kind Location seeded there.
func (s *FlightScheduler) parkAtPickup(
	ctx context.Context,
	uow ports.UnitOfWork,
	drn *drone.Drone,
	pickup *location.Location,
) (kernel.UUID, error) {
	if id := drn.CurrentLocationID(); id != nil {
		loc, err := uow.LocationRepository().Get(ctx, *id)
		if err != nil {
			return kernel.UUID{}, err
		}

		if err = loc.MoveTo(pickup.Point()); err != nil {
			return kernel.UUID{}, err
		}

		if err = uow.LocationRepository().Update(ctx, loc); err != nil {
			return kernel.UUID{}, err
		}

		return *id, nil
	}

	loc, err := location.NewLocation(kernel.NewUUID(), location.KindDrone, pickup.Point(), "")
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.LocationRepository().Add(ctx, loc); err != nil {
		return kernel.UUID{}, err
	}

	if err = drn.AssignLocation(loc.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DroneRepository().Update(ctx, drn); err != nil {
		return kernel.UUID{}, err
	}

	return loc.ID(), nil
}

// prepareReturn plans the route from the drone's current position back to its
// restaurant's pickup point. Returns a nil flight when the drone has no
// Location record.
func (s *FlightScheduler) prepareReturn(ctx context.Context, droneID kernel.UUID) (*flight, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drn, err := uow.DroneRepository().Get(ctx, droneID)
	if err != nil {
		return nil, err
	}
	if drn.CurrentLocationID() == nil {
		return nil, nil
	}

	rest, err := uow.RestaurantRepository().Get(ctx, drn.RestaurantID())
	if err != nil {
		return nil, err
	}

	origin, err := uow.LocationRepository().Get(ctx, *drn.CurrentLocationID())
	if err != nil {
		return nil, err
	}

	base, err := uow.LocationRepository().Get(ctx, rest.LocationID())
	if err != nil {
		return nil, err
	}

	route, err := s.planner.PlanRoute(origin.Point(), base.Point(), s.steps)
	if err != nil {
		return nil, err
	}

	return &flight{
		droneID:    droneID,
		locationID: *drn.CurrentLocationID(),
		direction:  returnToBase,
		route:      route,
		cancel:     make(chan struct{}),
	}, nil
}

// launch registers the flight, cancelling any previous one for the same
// drone, and starts the simulation goroutine.
func (s *FlightScheduler) launch(f *flight) {
	s.mu.Lock()
	if existing, ok := s.flights[f.droneID]; ok {
		close(existing.cancel)
	}
	s.flights[f.droneID] = f
	s.mu.Unlock()

	metrics.ActiveFlights.Inc()
	metrics.FlightsStartedTotal.WithLabelValues(f.direction.String()).Inc()

	s.logger.Info("Flight started",
		"drone_id", f.droneID.String(),
		"direction", f.direction.String(),
		"waypoints", len(f.route))

	s.wg.Add(1)
	go s.fly(f)
}

// fly walks the route one waypoint per tick until the route is exhausted or
// the flight is cancelled. Tick failures are logged and skipped; the cursor
// keeps advancing so one bad write cannot stall the drone forever.
func (s *FlightScheduler) fly(f *flight) {
	defer s.wg.Done()
	defer metrics.ActiveFlights.Dec()
	defer s.deregister(f)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 1; i < len(f.route); i++ {
		select {
		case <-f.cancel:
			return
		case <-ticker.C():
		}

		last := i == len(f.route)-1
		if err := s.applyTick(context.Background(), f, f.route[i], last); err != nil {
			metrics.MovementTicksTotal.WithLabelValues("error").Inc()
			s.logger.Error("Movement tick failed",
				"drone_id", f.droneID.String(),
				"direction", f.direction.String(),
				"error", err)
			continue
		}
		metrics.MovementTicksTotal.WithLabelValues("ok").Inc()
	}

	s.logger.Info("Flight finished",
		"drone_id", f.droneID.String(),
		"direction", f.direction.String())
}

// deregister removes the flight from the registry unless it has already been
// replaced by a newer flight for the same drone.
func (s *FlightScheduler) deregister(f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.flights[f.droneID]; ok && current == f {
		delete(s.flights, f.droneID)
	}
}

// applyTick persists one waypoint in its own transaction. On the final
// waypoint it also records arrival (outbound) or brings the drone back into
// the assignable pool (return).
func (s *FlightScheduler) applyTick(
	ctx context.Context,
	f *flight,
	waypoint kernel.GeoPoint,
	last bool,
) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx, f.locationID)
	if err != nil {
		return err
	}

	if err = loc.MoveTo(waypoint); err != nil {
		return err
	}

	if err = uow.LocationRepository().Update(ctx, loc); err != nil {
		return err
	}

	if last {
		switch f.direction {
		case outbound:
			err = s.recordArrival(ctx, uow, f)
		case returnToBase:
			err = s.recordLanding(ctx, uow, f)
		}
		if err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// recordArrival marks the delivery Arrived and flags the order so the
// customer can confirm receipt.
func (s *FlightScheduler) recordArrival(ctx context.Context, uow ports.UnitOfWork, f *flight) error {
	dlv, err := uow.DeliveryRepository().Get(ctx, f.deliveryID)
	if err != nil {
		return err
	}
	if err = dlv.Arrive(); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, dlv); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, f.orderID)
	if err != nil {
		return err
	}
	if err = ord.MarkArrived(); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, ord)
}

// recordLanding puts the drone back into the assignable pool after the
// return-to-base flight touches down.
func (s *FlightScheduler) recordLanding(ctx context.Context, uow ports.UnitOfWork, f *flight) error {
	drn, err := uow.DroneRepository().Get(ctx, f.droneID)
	if err != nil {
		return err
	}
	if err = drn.ReturnToIdle(); err != nil {
		return err
	}

	return uow.DroneRepository().Update(ctx, drn)
}
