package geoinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"
)

func TestLocalityFromResults(t *testing.T) {
	results := []maps.GeocodingResult{
		{
			FormattedAddress: "No. 1, Sec. 1, Xinyi Rd., Taipei",
			AddressComponents: []maps.AddressComponent{
				{LongName: "Xinyi Road", Types: []string{"route"}},
				{LongName: "Taipei", Types: []string{"locality", "political"}},
			},
		},
	}

	assert.Equal(t, "Taipei", localityFromResults(results))
}

func TestLocalityFromResultsFallsBackToFormattedAddress(t *testing.T) {
	results := []maps.GeocodingResult{
		{
			FormattedAddress:  "Somewhere remote",
			AddressComponents: []maps.AddressComponent{{LongName: "Earth", Types: []string{"planet"}}},
		},
	}

	assert.Equal(t, "Somewhere remote", localityFromResults(results))
}

func TestLocalityFromResultsEmpty(t *testing.T) {
	assert.Empty(t, localityFromResults(nil))
}
