package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-microservice/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(5.3261, -4.02, 5.3261, -4.02))
	})

	t.Run("known distance within city", func(t *testing.T) {
		// Plateau -> Treichville (Абиджан), ~4.1 км
		d := utils.HaversineDistance(5.3261, -4.0200, 5.2950, -3.9980)
		assert.InDelta(t, 4140, d, 100)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := utils.HaversineDistance(0, 0, 1, 0)
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("symmetry", func(t *testing.T) {
		d1 := utils.HaversineDistance(5.3261, -4.02, 48.8566, 2.3522)
		d2 := utils.HaversineDistance(48.8566, 2.3522, 5.3261, -4.02)
		assert.Equal(t, d1, d2)
	})

	t.Run("near-antipodal points do not produce NaN", func(t *testing.T) {
		d := utils.HaversineDistance(0, 0, 0, 180)
		assert.False(t, math.IsNaN(d))
		assert.InDelta(t, math.Pi*6371000, d, 1000)
	})
}

func TestBoundingBoxAround(t *testing.T) {
	t.Run("box contains center", func(t *testing.T) {
		box := utils.BoundingBoxAround(5.3261, -4.02, 5)
		assert.Less(t, box.MinLat, 5.3261)
		assert.Greater(t, box.MaxLat, 5.3261)
		assert.Less(t, box.MinLng, -4.02)
		assert.Greater(t, box.MaxLng, -4.02)
	})

	t.Run("lat extent matches radius", func(t *testing.T) {
		box := utils.BoundingBoxAround(5.3261, -4.02, 5)
		assert.InDelta(t, 2*5/111.32, box.MaxLat-box.MinLat, 1e-9)
	})

	t.Run("lng extent widens with latitude", func(t *testing.T) {
		equator := utils.BoundingBoxAround(0, 0, 5)
		north := utils.BoundingBoxAround(60, 0, 5)
		assert.Greater(t, north.MaxLng-north.MinLng, equator.MaxLng-equator.MinLng)
	})

	t.Run("cos floor near poles", func(t *testing.T) {
		// cos(89) ~ 0.017, без floor дельта долготы взорвалась бы
		box := utils.BoundingBoxAround(89, 0, 5)
		expected := 2 * 5 / (111.32 * 0.2)
		assert.InDelta(t, expected, box.MaxLng-box.MinLng, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(5.3261, -4.02))
	assert.True(t, utils.ValidateCoordinates(90, 180))
	assert.True(t, utils.ValidateCoordinates(-90, -180))
	assert.True(t, utils.ValidateCoordinates(0, 0))

	assert.False(t, utils.ValidateCoordinates(90.0001, 0))
	assert.False(t, utils.ValidateCoordinates(-91, 0))
	assert.False(t, utils.ValidateCoordinates(0, 180.5))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 0))
	assert.False(t, utils.ValidateCoordinates(0, math.Inf(1)))
}

func TestRoundCoord(t *testing.T) {
	assert.Equal(t, 5.3261, utils.RoundCoord(5.32614))
	assert.Equal(t, 5.3262, utils.RoundCoord(5.32615))
	assert.Equal(t, -4.02, utils.RoundCoord(-4.02001))
	assert.Equal(t, 0.0, utils.RoundCoord(0.00004))
}

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 1.0, utils.ClampRadius(0))
	assert.Equal(t, 1.0, utils.ClampRadius(-3))
	assert.Equal(t, 1.0, utils.ClampRadius(0.5))
	assert.Equal(t, 5.0, utils.ClampRadius(5))
	assert.Equal(t, 50.0, utils.ClampRadius(50))
	assert.Equal(t, 50.0, utils.ClampRadius(120))
}
