package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
)

func TestNewRestaurant(t *testing.T) {
	id := kernel.NewUUID()
	locationID := kernel.NewUUID()

	t.Run("valid restaurant", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(id, "Sakura Sushi", locationID)
		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.Equal(t, id, r.ID())
		assert.Equal(t, "Sakura Sushi", r.Name())
		assert.Equal(t, locationID, r.LocationID())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(kernel.UUID{}, "Sakura Sushi", locationID)
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(id, "", locationID)
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	})

	t.Run("empty location id", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(id, "Sakura Sushi", kernel.UUID{})
		require.Error(t, err)
	})
}

func TestRestaurantValidate(t *testing.T) {
	t.Run("nil restaurant", func(t *testing.T) {
		var r *restaurant.Restaurant
		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})

	t.Run("zero value restaurant", func(t *testing.T) {
		r := &restaurant.Restaurant{}
		assert.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestRestoreRestaurant(t *testing.T) {
	id := kernel.NewUUID()
	locationID := kernel.NewUUID()

	r, err := restaurant.RestoreRestaurant(id, "Sakura Sushi", locationID)
	require.NoError(t, err)
	assert.NoError(t, r.Validate())
	assert.Equal(t, id, r.ID())
}
