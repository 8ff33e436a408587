package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetersToDegrees(t *testing.T) {
	assert.InDelta(t, 0.001, MetersToDegrees(111), 1e-12)
	assert.InDelta(t, 0.0005, MetersToDegrees(55.5), 1e-12)
}

func TestPlanarDistance(t *testing.T) {
	assert.InDelta(t, 0.0, PlanarDistance(1, 1, 1, 1), 1e-12)
	assert.InDelta(t, 5.0, PlanarDistance(0, 0, 3, 4), 1e-12)
	assert.InDelta(t, PlanarDistance(3, 4, 0, 0), PlanarDistance(0, 0, 3, 4), 1e-12)
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     float64
	}{
		{52.52000081234, 7, 52.5200008},
		{13.40495449, 7, 13.4049545},
		{4.756, 2, 4.76},
		{-0.12345678, 7, -0.1234568},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.in, tt.decimals), 1e-12)
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(52.52, 13.405))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -181))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}
