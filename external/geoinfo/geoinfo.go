package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/symtoscan/symtoscan-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	Get(schema.Location) ([]maps.GeocodingResult, error)
	Locality(schema.Location) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

// latLng - a string representation of a Lat,Lng pair, e.g. 1.23,4.56
func (g geoInfo) Get(loc schema.Location) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
}

// Locality reverse-geocodes coordinates into a human-readable locality
// name, used to hint the facility search prompt.
func (g geoInfo) Locality(loc schema.Location) (string, error) {
	results, err := g.Get(loc)
	if err != nil {
		return "", err
	}

	return localityFromResults(results), nil
}

// localityFromResults picks the locality address component out of the
// geocoding results, falling back to the first formatted address.
func localityFromResults(results []maps.GeocodingResult) string {
	for _, r := range results {
		for _, comp := range r.AddressComponents {
			for _, t := range comp.Types {
				if t == "locality" {
					return comp.LongName
				}
			}
		}
	}

	if len(results) > 0 {
		return results[0].FormattedAddress
	}

	return ""
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

	return &geoInfo{
		client: client,
	}, nil
}
