package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/pariparajuli/geosurvey/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrEmptyGeo = fmt.Errorf("empty geo info")

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Get(ctx context.Context, loc schema.Location) (*schema.Place, error)
}

type geoInfo struct {
	client *maps.Client
}

// Get resolves the administrative area of a location by reverse geocoding
func (g geoInfo) Get(ctx context.Context, loc schema.Location) (*schema.Place, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
	if err != nil {
		return nil, err
	}

	if len(geos) == 0 {
		return nil, ErrEmptyGeo
	}

	place := schema.Place{
		Address: geos[0].FormattedAddress,
	}
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}

		switch a.Types[0] {
		case "country":
			place.Country = a.LongName
		case "administrative_area_level_1":
			place.Province = a.LongName
		case "administrative_area_level_2":
			place.District = a.LongName
		}
	}

	return &place, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return NewWithClient(client), nil
}

func NewWithClient(client *maps.Client) GeoInfo {
	return &geoInfo{
		client: client,
	}
}
