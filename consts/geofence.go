package consts

const (
	// EarthRadius in meters
	EarthRadius = 6371000.0

	// GeofenceRadius is the minimum distance in meters between two accepted
	// submissions of the same user
	GeofenceRadius = 5.0
)

const (
	DuplicateLocationMessage = "You cannot take multiple surveys in this location within 5 meters."
)
