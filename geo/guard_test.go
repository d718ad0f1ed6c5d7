package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pariparajuli/geosurvey/schema"
)

func TestGuardWithoutMemory(t *testing.T) {
	g := NewGuard()

	assert.Nil(t, g.LastAccepted())
	assert.False(t, g.IsDuplicate(&schema.Location{Latitude: 10, Longitude: 10}))
}

func TestGuardRecordAccepted(t *testing.T) {
	g := NewGuard()
	here := schema.Location{Latitude: 10, Longitude: 10}
	g.RecordAccepted(here)

	assert.Equal(t, &here, g.LastAccepted())
	assert.True(t, g.IsDuplicate(&here))
	assert.False(t, g.IsDuplicate(&schema.Location{Latitude: 10.001, Longitude: 10}))

	moved := schema.Location{Latitude: 10.001, Longitude: 10}
	g.RecordAccepted(moved)
	assert.Equal(t, &moved, g.LastAccepted())
	assert.False(t, g.IsDuplicate(&here))
}

func TestGuardLastAcceptedIsCopy(t *testing.T) {
	g := NewGuard()
	g.RecordAccepted(schema.Location{Latitude: 1, Longitude: 1})

	l := g.LastAccepted()
	l.Latitude = 50

	assert.Equal(t, float64(1), g.LastAccepted().Latitude)
}
