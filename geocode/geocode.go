package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go-cropsense/types"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
// A missing credential is an error, not a fatal: the location resolver falls
// back to the offline coordinate table when geocoding is unavailable.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// ReverseGeocode turns a coordinate pair into an address record.
func ReverseGeocode(ctx context.Context, lat, lon float64) (types.GeocodedAddress, error) {
	var addr types.GeocodedAddress

	client, err := InitMapsClient()
	if err != nil {
		return addr, err
	}

	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lon},
	}
	results, err := client.ReverseGeocode(ctx, req)
	if err != nil {
		return addr, err
	}
	if len(results) == 0 {
		return addr, fmt.Errorf("no reverse geocoding results for %.4f, %.4f", lat, lon)
	}

	addr.FullAddress = results[0].FormattedAddress
	for _, component := range results[0].AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "locality":
				addr.City = component.LongName
			case "administrative_area_level_2":
				addr.District = component.LongName
			case "administrative_area_level_1":
				addr.State = component.LongName
			case "postal_code":
				addr.Pincode = component.LongName
			case "country":
				addr.Country = component.LongName
			}
		}
	}

	// Some rural coordinates resolve without a locality; degrade to district.
	if addr.City == "" {
		addr.City = addr.District
	}

	return addr, nil
}
