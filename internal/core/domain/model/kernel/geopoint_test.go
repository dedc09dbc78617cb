package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates_valid_point", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(40.4168, -3.7038)

		require.NoError(t, err)
		assert.InDelta(t, 40.4168, p.Lat(), 0)
		assert.InDelta(t, -3.7038, p.Lng(), 0)
		require.NoError(t, p.Validate())
	})

	t.Run("accepts_boundary_coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects_out_of_range_latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_out_of_range_longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("aggregates_errors_for_both_axes", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		require.Error(t, p.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		p2, _ := kernel.NewGeoPoint(10, 20)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_points", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		p2, _ := kernel.NewGeoPoint(10, 21)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(10, 20)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)
		require.Error(t, err)
	})
}

func TestGeoPoint_Interpolate(t *testing.T) {
	t.Run("endpoints", func(t *testing.T) {
		from, _ := kernel.NewGeoPoint(10, 20)
		to, _ := kernel.NewGeoPoint(10, 30)

		start, err := from.Interpolate(to, 0)
		require.NoError(t, err)
		equal, _ := start.IsEqual(from)
		assert.True(t, equal)

		end, err := from.Interpolate(to, 1)
		require.NoError(t, err)
		equal, _ = end.IsEqual(to)
		assert.True(t, equal)
	})

	t.Run("midpoint", func(t *testing.T) {
		from, _ := kernel.NewGeoPoint(10, 20)
		to, _ := kernel.NewGeoPoint(10, 30)

		mid, err := from.Interpolate(to, 0.5)

		require.NoError(t, err)
		assert.InDelta(t, 10.0, mid.Lat(), 1e-9)
		assert.InDelta(t, 25.0, mid.Lng(), 1e-9)
	})

	t.Run("rejects_fraction_outside_unit_interval", func(t *testing.T) {
		from, _ := kernel.NewGeoPoint(10, 20)
		to, _ := kernel.NewGeoPoint(10, 30)

		_, err := from.Interpolate(to, 1.5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
