package geo

import (
	"github.com/pariparajuli/geosurvey/schema"
)

// Guard remembers the location of the last accepted submission. It is not
// persisted: a new Guard starts without memory.
type Guard struct {
	lastAccepted *schema.Location
}

func NewGuard() *Guard {
	return &Guard{}
}

// IsDuplicate checks current against the remembered location
func (g *Guard) IsDuplicate(current *schema.Location) bool {
	return IsDuplicateLocation(current, g.lastAccepted)
}

// RecordAccepted replaces the remembered location. Call it only after the
// backend confirmed a submission.
func (g *Guard) RecordAccepted(point schema.Location) {
	g.lastAccepted = &point
}

// LastAccepted returns a copy of the remembered location, nil if none
func (g *Guard) LastAccepted() *schema.Location {
	if g.lastAccepted == nil {
		return nil
	}
	l := *g.lastAccepted
	return &l
}
