package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
)

func TestNewCreateDroneCommand_Success(t *testing.T) {
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewCreateDroneCommand("DR-042", restaurantID, 5)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.NoError(t, cmd.DroneID().Validate())
	assert.Equal(t, "DR-042", cmd.Code())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, 5, cmd.Capacity())
}

func TestNewCreateDroneCommand_ValidationErrors(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("empty code", func(t *testing.T) {
		_, err := commands.NewCreateDroneCommand("", restaurantID, 5)
		require.ErrorIs(t, err, commands.ErrCodeIsRequired)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		_, err := commands.NewCreateDroneCommand("DR-042", kernel.UUID{}, 5)
		require.Error(t, err)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := commands.NewCreateDroneCommand("DR-042", restaurantID, 0)
		require.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
	})
}

func TestCreateDroneCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateDroneCommand // zero value, not constructed via constructor

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDroneCommandIsNotConstructed)
}
