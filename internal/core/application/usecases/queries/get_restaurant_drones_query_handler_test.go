package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/dronerepo"
	"dispatch/internal/adapters/out/postgres/locationrepo"
	"dispatch/internal/core/application/usecases/queries"
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

type GetRestaurantDronesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRestaurantDronesQueryHandler
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) SetupSuite() {
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
		&dronerepo.DroneDTO{},
		&locationrepo.LocationDTO{},
	))

	suite.handler = queries.NewGetRestaurantDronesQueryHandler(db)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drones, locations").Error)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetRestaurantDronesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetRestaurantDronesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetRestaurantDronesQuery constructor")
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TestHandle_MixedFleet_ReturnsOwnDronesOrderedByCode() {
	restaurantID := kernel.NewUUID()
	otherRestaurantID := kernel.NewUUID()

	second := suite.seedDrone("DR-02", restaurantID)
	suite.Require().NoError(second.BeginDelivery())
	suite.updateDrone(second)

	first := suite.seedDrone("DR-01", restaurantID)
	suite.seedDrone("DR-03", otherRestaurantID)

	query, err := queries.NewGetRestaurantDronesQuery(restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal("DR-01", result[0].Code)
	suite.Equal("Idle", result[0].Status)
	suite.Equal(drone.BatteryLevelMax, result[0].BatteryLevel)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal("DR-02", result[1].Code)
	suite.Equal("Delivering", result[1].Status)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TestHandle_DroneWithPosition_ReturnsCoordinates() {
	restaurantID := kernel.NewUUID()

	point, err := kernel.NewGeoPoint(48.8584, 2.2945)
	suite.Require().NoError(err)
	loc, err := location.NewLocation(kernel.NewUUID(), location.KindDrone, point, "")
	suite.Require().NoError(err)

	locRepo := locationrepo.NewGormLocationRepository(suite.db, noopTracker{})
	suite.Require().NoError(locRepo.Add(context.Background(), loc))

	flying := suite.seedDrone("DR-01", restaurantID)
	suite.Require().NoError(flying.BeginDelivery())
	suite.Require().NoError(flying.AssignLocation(loc.ID()))
	suite.updateDrone(flying)

	grounded := suite.seedDrone("DR-02", restaurantID)

	query, err := queries.NewGetRestaurantDronesQuery(restaurantID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Require().NotNil(result[0].Lat)
	suite.Require().NotNil(result[0].Lng)
	suite.InDelta(48.8584, *result[0].Lat, 1e-9)
	suite.InDelta(2.2945, *result[0].Lng, 1e-9)

	suite.Equal(grounded.ID(), result[1].ID)
	suite.Nil(result[1].Lat)
	suite.Nil(result[1].Lng)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	restaurantID := kernel.NewUUID()
	suite.seedDrone("DR-01", restaurantID)

	query, err := queries.NewGetRestaurantDronesQuery(restaurantID)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) seedDrone(code string, restaurantID kernel.UUID) *drone.Drone {
	testDrone, err := drone.NewDrone(kernel.NewUUID(), code, restaurantID, drone.BatteryLevelMax, 5)
	suite.Require().NoError(err)

	repo := dronerepo.NewGormDroneRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), testDrone))

	return testDrone
}

func (suite *GetRestaurantDronesQueryHandlerTestSuite) updateDrone(testDrone *drone.Drone) {
	repo := dronerepo.NewGormDroneRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), testDrone))
}

func TestGetRestaurantDronesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRestaurantDronesQueryHandlerTestSuite))
}
