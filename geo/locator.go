package geo

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/pariparajuli/geosurvey/schema"
)

const logPrefix = "geo"

var (
	ErrPermissionDenied    = fmt.Errorf("location permission denied")
	ErrNoLocationFix       = fmt.Errorf("no location fix")
	ErrLocatorNotAvailable = fmt.Errorf("locator is not available")
)

// Locator supplies the current position of the device
type Locator interface {
	Locate(ctx context.Context) (schema.Location, error)
}

// StaticLocator always reports the same configured position. A nil
// position behaves like a denied permission.
type StaticLocator struct {
	position *schema.Location
}

func NewStaticLocator(position *schema.Location) *StaticLocator {
	return &StaticLocator{position: position}
}

func (s *StaticLocator) Locate(ctx context.Context) (schema.Location, error) {
	if err := ctx.Err(); err != nil {
		return schema.Location{}, err
	}

	if s.position == nil {
		return schema.Location{}, ErrPermissionDenied
	}

	return *s.position, nil
}

// GoogleLocator asks the Google Geolocation API for a fix based on the
// caller IP address
type GoogleLocator struct {
	client *maps.Client
}

func NewGoogleLocator(client *maps.Client) *GoogleLocator {
	return &GoogleLocator{
		client: client,
	}
}

func (g *GoogleLocator) Locate(ctx context.Context) (schema.Location, error) {
	if g.client == nil {
		return schema.Location{}, ErrLocatorNotAvailable
	}

	result, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{
		ConsiderIP: true,
	})
	if err != nil {
		return schema.Location{}, err
	}

	if result == nil {
		return schema.Location{}, ErrNoLocationFix
	}

	loc := schema.Location{
		Latitude:  result.Location.Lat,
		Longitude: result.Location.Lng,
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"lat":      loc.Latitude,
		"lng":      loc.Longitude,
		"accuracy": result.Accuracy,
	}).Debug("geolocation fix")

	return loc, nil
}

type MultipleLocatorErrors struct {
	errors []error
}

func (e *MultipleLocatorErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

// Errors returns the error of each locator in order
func (e *MultipleLocatorErrors) Errors() []error {
	return e.errors
}

func NewMultipleLocatorErrors(errors []error) *MultipleLocatorErrors {
	return &MultipleLocatorErrors{
		errors: errors,
	}
}

// MultipleLocator tries each locator in turn and returns the first fix
type MultipleLocator struct {
	locators []Locator
}

func NewMultipleLocator(locators ...Locator) *MultipleLocator {
	return &MultipleLocator{
		locators: locators,
	}
}

func (m *MultipleLocator) Locate(ctx context.Context) (schema.Location, error) {
	var errors []error
	for _, locator := range m.locators {
		loc, err := locator.Locate(ctx)
		if err == nil {
			return loc, nil
		}

		errors = append(errors, err)
		if ctx.Err() != nil {
			break
		}
	}

	if len(errors) == 0 {
		errors = append(errors, ErrLocatorNotAvailable)
	}

	return schema.Location{}, NewMultipleLocatorErrors(errors)
}
