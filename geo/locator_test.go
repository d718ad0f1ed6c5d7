package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/pariparajuli/geosurvey/schema"
)

type failingLocator struct {
	err error
}

func (f failingLocator) Locate(context.Context) (schema.Location, error) {
	return schema.Location{}, f.err
}

func TestStaticLocator(t *testing.T) {
	here := schema.Location{Latitude: 1.25, Longitude: 2.5}
	loc, err := NewStaticLocator(&here).Locate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, here, loc)

	_, err = NewStaticLocator(nil).Locate(context.Background())
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestStaticLocatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticLocator(&schema.Location{}).Locate(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestMultipleLocatorFallback(t *testing.T) {
	here := schema.Location{Latitude: 3, Longitude: 4}
	m := NewMultipleLocator(failingLocator{ErrNoLocationFix}, NewStaticLocator(&here))

	loc, err := m.Locate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, here, loc)
}

func TestMultipleLocatorAllFailed(t *testing.T) {
	m := NewMultipleLocator(failingLocator{ErrNoLocationFix}, NewStaticLocator(nil))

	_, err := m.Locate(context.Background())
	assert.Error(t, err)

	errs, ok := err.(*MultipleLocatorErrors)
	assert.True(t, ok)
	assert.Equal(t, []error{ErrNoLocationFix, ErrPermissionDenied}, errs.Errors())
	assert.Equal(t, "#0: no location fix\n#1: location permission denied", err.Error())
}

func TestMultipleLocatorEmpty(t *testing.T) {
	_, err := NewMultipleLocator().Locate(context.Background())
	assert.Equal(t, "#0: locator is not available", err.Error())
}

func TestGoogleLocator(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"location":{"lat":27.7172,"lng":85.324},"accuracy":25.0}`))
	}))
	defer ts.Close()

	client, err := maps.NewClient(maps.WithAPIKey("test"), maps.WithBaseURL(ts.URL))
	assert.NoError(t, err)

	loc, err := NewGoogleLocator(client).Locate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, schema.Location{Latitude: 27.7172, Longitude: 85.324}, loc)
}

func TestGoogleLocatorWithoutClient(t *testing.T) {
	_, err := NewGoogleLocator(nil).Locate(context.Background())
	assert.Equal(t, ErrLocatorNotAvailable, err)
}
