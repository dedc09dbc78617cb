package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/movement"

	"gorm.io/gorm"
)

// CompositionRoot wires every adapter and use case together. Handlers are
// created on demand; the flight scheduler and logger are shared singletons
// because they carry state (the flight registry) across requests.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	scheduler  *movement.FlightScheduler
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	scheduler := movement.NewFlightScheduler(uowFactory, movement.WallClock{}, logger)
	if interval, err := time.ParseDuration(config.FlightTickInterval); err == nil {
		scheduler.SetTickInterval(interval)
	}
	if steps, err := strconv.Atoi(config.RouteSteps); err == nil {
		scheduler.SetRouteSteps(steps)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		scheduler:  scheduler,
		logger:     logger,
	}
}

// Logger returns the shared structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// FlightScheduler returns the shared movement scheduler.
func (c *CompositionRoot) FlightScheduler() *movement.FlightScheduler {
	return c.scheduler
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDroneCommandHandler(f, c.scheduler, c.logger)
}

func (c *CompositionRoot) CreateAutoAssignCommandHandler() commands.AutoAssignCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignCommandHandler(f, c.CreateAssignDroneCommandHandler())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.ConfirmDeliveryUoWFactory = FuncConfirmDeliveryUoWFactory(func() commands.ConfirmDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	var f commands.CreateDroneUoWFactory = FuncCreateDroneUoWFactory(func() commands.CreateDroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantDronesQueryHandler() queries.GetRestaurantDronesQueryHandler {
	return queries.NewGetRestaurantDronesQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAutoAssignCommandHandler(), c.config.AutoAssignSchedule, c.logger)
}

// CreateHTTPServer wires the REST surface.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateAssignDroneCommandHandler(),
		c.CreateAutoAssignCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateCreateDroneCommandHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.CreateGetRestaurantDronesQueryHandler(),
		c.scheduler,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncConfirmDeliveryUoWFactory func() commands.ConfirmDeliveryUoW

func (f FuncConfirmDeliveryUoWFactory) Create() commands.ConfirmDeliveryUoW {
	return f()
}

type FuncCreateDroneUoWFactory func() commands.CreateDroneUoW

func (f FuncCreateDroneUoWFactory) Create() commands.CreateDroneUoW {
	return f()
}
