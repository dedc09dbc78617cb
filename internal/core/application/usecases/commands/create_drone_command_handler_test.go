package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/drone"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
)

func TestCreateDroneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	rest, err := restaurant.NewRestaurant(restaurantID, "Sakura Sushi", kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewCreateDroneCommand("DR-042", restaurantID, 5)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(rest, nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Add", ctx, mock.MatchedBy(func(d *drone.Drone) bool {
			return d.Code() == "DR-042" &&
				d.Status() == drone.Idle &&
				d.BatteryLevel() == drone.BatteryLevelMax &&
				d.CurrentLocationID() == nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDroneCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDroneCommand{} // not constructed properly

	factory := new(MockCreateDroneUoWFactory)
	handler := commands.NewCreateDroneCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateDroneCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDroneCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDroneCommand("DR-042", kernel.NewUUID(), 5)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, cmd.RestaurantID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
}

func TestCreateDroneCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	rest, err := restaurant.NewRestaurant(restaurantID, "Sakura Sushi", kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewCreateDroneCommand("DR-042", restaurantID, 5)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(rest, nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Add", ctx, mock.AnythingOfType("*drone.Drone")).
			Return(errors.New("duplicate code")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate code")
	assert.NotNil(t, cmd.DroneID())
}
