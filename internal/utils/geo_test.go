package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Berlin to Potsdam, roughly 26km apart.
	d := HaversineDistance(52.5200, 13.4050, 52.3906, 13.0645)
	assert.InDelta(t, 27, d, 2)

	assert.Zero(t, HaversineDistance(52.52, 13.405, 52.52, 13.405))
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	lat, lng := 52.52, 13.405
	minLat, maxLat, minLng, maxLng := BoundingBox(lat, lng, 10)

	assert.Less(t, minLat, lat)
	assert.Greater(t, maxLat, lat)
	assert.Less(t, minLng, lng)
	assert.Greater(t, maxLng, lng)

	// A degree of latitude is about 111.32km, so a 10km radius spans
	// just under 0.09 degrees either way.
	assert.InDelta(t, 0.0898, maxLat-lat, 0.001)

	// Longitude degrees shrink away from the equator, so the window
	// must be wider than the latitude one at 52°N.
	assert.Greater(t, maxLng-lng, maxLat-lat)
}
