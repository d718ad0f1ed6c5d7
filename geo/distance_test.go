package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pariparajuli/geosurvey/schema"
)

type distanceTestCase struct {
	a        schema.Location
	b        schema.Location
	expected float64
}

func TestDistance(t *testing.T) {
	cases := []distanceTestCase{
		{schema.Location{Latitude: 0, Longitude: 0}, schema.Location{Latitude: 0, Longitude: 0}, 0},
		// one degree along a meridian
		{schema.Location{Latitude: 0, Longitude: 0}, schema.Location{Latitude: 1, Longitude: 0}, 111194.93},
		// Kathmandu to Pokhara
		{schema.Location{Latitude: 27.7172, Longitude: 85.3240}, schema.Location{Latitude: 28.2096, Longitude: 83.9856}, 142394},
	}

	for _, c := range cases {
		d := Distance(c.a, c.b)
		assert.InDelta(t, c.expected, d, math.Max(1, c.expected*0.005), "wrong distance between %v and %v", c.a, c.b)
	}
}

func TestDistanceIsMetric(t *testing.T) {
	// same coordinate delta, shorter east-west distance near the pole
	equator := Distance(schema.Location{Latitude: 0, Longitude: 0}, schema.Location{Latitude: 0, Longitude: 0.001})
	north := Distance(schema.Location{Latitude: 80, Longitude: 0}, schema.Location{Latitude: 80, Longitude: 0.001})

	assert.True(t, north < equator/5)
}

func TestIsDuplicateDistanceBoundary(t *testing.T) {
	assert.True(t, IsDuplicateDistance(0))
	assert.True(t, IsDuplicateDistance(4.999))
	assert.False(t, IsDuplicateDistance(5))
	assert.False(t, IsDuplicateDistance(5.001))
}

func TestIsDuplicateLocation(t *testing.T) {
	here := &schema.Location{Latitude: 27.7172, Longitude: 85.3240}
	near := &schema.Location{Latitude: 27.7172 + 0.000044, Longitude: 85.3240}
	far := &schema.Location{Latitude: 27.7172 + 0.000046, Longitude: 85.3240}

	assert.True(t, IsDuplicateLocation(here, here), "identical points")
	assert.True(t, IsDuplicateLocation(here, near))
	assert.False(t, IsDuplicateLocation(here, far))
}

func TestIsDuplicateLocationSymmetric(t *testing.T) {
	points := []*schema.Location{
		{Latitude: 27.7172, Longitude: 85.3240},
		{Latitude: 27.71722, Longitude: 85.32401},
		{Latitude: 27.7173, Longitude: 85.3241},
		{Latitude: -33.8688, Longitude: 151.2093},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, IsDuplicateLocation(a, b), IsDuplicateLocation(b, a))
		}
	}
}

func TestIsDuplicateLocationAbsent(t *testing.T) {
	here := &schema.Location{Latitude: 1, Longitude: 2}

	assert.False(t, IsDuplicateLocation(here, nil))
	assert.False(t, IsDuplicateLocation(nil, here))
	assert.False(t, IsDuplicateLocation(nil, nil))
}
