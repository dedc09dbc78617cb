package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/dronerepo"
	"dispatch/internal/adapters/out/postgres/locationrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/location"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker when the test
// seeds data outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type GetActiveDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveDeliveriesQueryHandler
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&dronerepo.DroneDTO{},
		&locationrepo.LocationDTO{},
	))

	suite.handler = queries.NewGetActiveDeliveriesQueryHandler(db)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE deliveries, drones, locations").Error,
	)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveDeliveriesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveDeliveriesQuery constructor")
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ActiveAndCompleted_ReturnsActiveOldestFirst() {
	restaurantID := kernel.NewUUID()

	older := suite.seedDelivery("DR-01", restaurantID, delivery.OnTheWay,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	newer := suite.seedDelivery("DR-02", restaurantID, delivery.Arrived,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	suite.seedDelivery("DR-03", restaurantID, delivery.Completed,
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(older.ID(), result[0].ID)
	suite.Equal(older.OrderID(), result[0].OrderID)
	suite.Equal(older.DroneID(), result[0].DroneID)
	suite.Equal("OnTheWay", result[0].Status)

	suite.Equal(newer.ID(), result[1].ID)
	suite.Equal("Arrived", result[1].Status)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_DroneWithPosition_ReturnsCoordinates() {
	restaurantID := kernel.NewUUID()

	point, err := kernel.NewGeoPoint(35.6812, 139.7671)
	suite.Require().NoError(err)
	loc := suite.seedLocation(location.KindDrone, point)

	flying := suite.seedDrone("DR-01", restaurantID)
	suite.Require().NoError(flying.BeginDelivery())
	suite.Require().NoError(flying.AssignLocation(loc.ID()))
	suite.updateDrone(flying)

	trip, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), flying.ID(), kernel.NewUUID(), nil,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	suite.addDelivery(trip)

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().NotNil(result[0].DroneLat)
	suite.Require().NotNil(result[0].DroneLng)
	suite.InDelta(35.6812, *result[0].DroneLat, 1e-9)
	suite.InDelta(139.7671, *result[0].DroneLng, 1e-9)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_DroneWithoutPosition_ReturnsNilCoordinates() {
	suite.seedDelivery("DR-01", kernel.NewUUID(), delivery.OnTheWay,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	query := queries.NewGetActiveDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].DroneLat)
	suite.Nil(result[0].DroneLng)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.seedDelivery("DR-01", kernel.NewUUID(), delivery.OnTheWay,
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	query := queries.NewGetActiveDeliveriesQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) seedDrone(code string, restaurantID kernel.UUID) *drone.Drone {
	testDrone, err := drone.NewDrone(kernel.NewUUID(), code, restaurantID, drone.BatteryLevelMax, 5)
	suite.Require().NoError(err)

	repo := dronerepo.NewGormDroneRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testDrone))

	return testDrone
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) updateDrone(testDrone *drone.Drone) {
	repo := dronerepo.NewGormDroneRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), testDrone))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) seedLocation(kind location.Kind, point kernel.GeoPoint) *location.Location {
	loc, err := location.NewLocation(kernel.NewUUID(), kind, point, "")
	suite.Require().NoError(err)

	repo := locationrepo.NewGormLocationRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), loc))

	return loc
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) addDelivery(trip *delivery.Delivery) {
	repo := deliveryrepo.NewGormDeliveryRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), trip))
}

func (suite *GetActiveDeliveriesQueryHandlerTestSuite) seedDelivery(
	droneCode string,
	restaurantID kernel.UUID,
	status delivery.Status,
	startedAt time.Time,
) *delivery.Delivery {
	testDrone := suite.seedDrone(droneCode, restaurantID)

	var completedAt *time.Time
	if status == delivery.Completed {
		done := startedAt.Add(30 * time.Minute)
		completedAt = &done
	}

	trip, err := delivery.RestoreDelivery(
		kernel.NewUUID(), kernel.NewUUID(), testDrone.ID(), kernel.NewUUID(), nil,
		status, startedAt, completedAt,
	)
	suite.Require().NoError(err)
	suite.addDelivery(trip)

	return trip
}

func TestGetActiveDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveDeliveriesQueryHandlerTestSuite))
}
