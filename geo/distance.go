package geo

import (
	"math"

	"github.com/pariparajuli/geosurvey/consts"
	"github.com/pariparajuli/geosurvey/schema"
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in meters between two points
// using the haversine formula
func Distance(a, b schema.Location) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return consts.EarthRadius * c
}

// IsDuplicateDistance is the geofence boundary: closer than the radius is a
// duplicate, the radius itself is not
func IsDuplicateDistance(meters float64) bool {
	return meters < consts.GeofenceRadius
}

// IsDuplicateLocation reports whether current is within the geofence of
// lastAccepted. Both absent cases return false; callers must refuse a
// submission without a current location themselves.
func IsDuplicateLocation(current, lastAccepted *schema.Location) bool {
	if lastAccepted == nil || current == nil {
		return false
	}

	return IsDuplicateDistance(Distance(*current, *lastAccepted))
}
