package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Zero(t, Distance(47.0, -120.0, 47.0, -120.0))
	assert.Zero(t, Distance(0, 0, 0, 0))
}

func TestDistance_Symmetric(t *testing.T) {
	points := [][2]float64{
		{47.0, -120.0},
		{47.6062, -122.3321},
		{45.5152, -122.6784},
		{-33.8688, 151.2093},
		{0, 0},
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a[0], a[1], b[0], b[1]), Distance(b[0], b[1], a[0], a[1]), 1e-6)
		}
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Сиэтл - Портленд, около 233 км по прямой
	d := Distance(47.6062, -122.3321, 45.5152, -122.6784)
	assert.InDelta(t, 233_000, d, 2_000)
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	want := EarthRadiusMiles * (math.Pi / 180) * MetersPerMile
	assert.InDelta(t, want, Distance(10, 20, 11, 20), 1e-6)
}

func TestDistance_MonotonicWithSeparation(t *testing.T) {
	prev := 0.0
	for step := 1; step <= 90; step++ {
		d := Distance(0, 0, float64(step), 0)
		assert.Greater(t, d, prev)
		assert.GreaterOrEqual(t, d, 0.0)
		prev = d
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(47.0, -120.0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -181))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.NaN()))
}
