package schema

import (
	"encoding/json"
	"fmt"
)

// Location is a geographic point in degrees
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (l Location) String() string {
	return fmt.Sprintf("%f;%f", l.Latitude, l.Longitude)
}

// Valid reports whether the point lies within the coordinate ranges
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// GeoJSON is the mongodb representation of a point. Coordinates are ordered
// as [longitude, latitude].
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoJSONPoint(loc Location) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// Location converts a point back. It returns nil for a malformed point.
func (g GeoJSON) Location() *Location {
	if g.Type != "Point" || len(g.Coordinates) != 2 {
		return nil
	}

	return &Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}

// EncodeLocation serializes a location into the string form carried by
// submission payloads
func EncodeLocation(loc Location) string {
	b, _ := json.Marshal(loc)
	return string(b)
}

// DecodeLocation parses a serialized location. An empty string yields nil
// without error.
func DecodeLocation(s string) (*Location, error) {
	if s == "" {
		return nil, nil
	}

	var loc Location
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		return nil, err
	}

	if !loc.Valid() {
		return nil, fmt.Errorf("location out of range: %s", loc)
	}

	return &loc, nil
}

// Place is the administrative area a location lies in
type Place struct {
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Country  string `json:"country,omitempty" bson:"country,omitempty"`
	Province string `json:"province,omitempty" bson:"province,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
}
