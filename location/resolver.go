package location

import (
	"context"
	"fmt"
	"log"

	"go-cropsense/db"
	"go-cropsense/geocode"
	"go-cropsense/types"

	"cloud.google.com/go/firestore"
)

// DefaultDisplayName is the final fallback when nothing about the user's
// location is known at all.
const DefaultDisplayName = "Delhi, India"

// GeocodeFunc matches geocode.ReverseGeocode; injectable for tests.
type GeocodeFunc func(ctx context.Context, lat, lon float64) (types.GeocodedAddress, error)

type Resolver struct {
	store   *firestore.Client
	geocode GeocodeFunc
}

func NewResolver(store *firestore.Client) *Resolver {
	return &Resolver{store: store, geocode: geocode.ReverseGeocode}
}

// NewResolverWithGeocoder is used by tests to substitute the geocoder.
func NewResolverWithGeocoder(store *firestore.Client, fn GeocodeFunc) *Resolver {
	return &Resolver{store: store, geocode: fn}
}

// Resolve produces a LocationInfo for the request. Priority order:
//  1. Fresh GPS coordinates from the request (reverse geocoded, cached onto
//     the profile best-effort).
//  2. GPS coordinates previously stored on the profile, used as-is.
//  3. The profile's free-text location fields, defaulting to Delhi.
//
// DisplayName is always populated on every path.
func (r *Resolver) Resolve(ctx context.Context, gps *types.Coordinates, user *types.User) types.LocationInfo {
	if gps != nil && gps.Latitude != 0 && gps.Longitude != 0 {
		loc := r.resolveFresh(ctx, gps)
		if user != nil && r.store != nil {
			// Cache for future requests. A failed write must not abort the request.
			if err := db.UpdateUserLocation(ctx, r.store, user.ID, loc); err != nil {
				log.Printf("Failed to cache location for user %s: %v", user.ID, err)
			}
		}
		return loc
	}

	if user != nil && user.GPSCoordinates != nil &&
		user.GPSCoordinates.Latitude != 0 && user.GPSCoordinates.Longitude != 0 {
		loc := types.LocationInfo{
			Coordinates: user.GPSCoordinates,
			City:        user.City,
			State:       user.State,
			District:    user.District,
			Pincode:     user.Pincode,
			DisplayName: user.Location,
		}
		if loc.DisplayName == "" {
			loc.DisplayName = joinCityState(user.City, user.State)
		}
		if loc.DisplayName == "" {
			loc.DisplayName = formatCoordinates(user.GPSCoordinates.Latitude, user.GPSCoordinates.Longitude)
		}
		return loc
	}

	loc := types.LocationInfo{
		City:        userField(user, func(u *types.User) string { return u.City }),
		State:       userField(user, func(u *types.User) string { return u.State }),
		Pincode:     userField(user, func(u *types.User) string { return u.Pincode }),
		DisplayName: userField(user, func(u *types.User) string { return u.Location }),
	}
	if loc.DisplayName == "" {
		loc.DisplayName = loc.City
	}
	if loc.DisplayName == "" {
		loc.DisplayName = DefaultDisplayName
	}
	return loc
}

func (r *Resolver) resolveFresh(ctx context.Context, gps *types.Coordinates) types.LocationInfo {
	addr, err := r.geocode(ctx, gps.Latitude, gps.Longitude)
	if err != nil {
		log.Printf("Reverse geocode failed for %.4f, %.4f: %v", gps.Latitude, gps.Longitude, err)
		// Offline fallback: approximate the state from the coordinate table.
		state := geocode.StateFromCoordinates(gps.Latitude, gps.Longitude)
		loc := types.LocationInfo{
			Coordinates: gps,
			City:        "Unknown",
			State:       state,
			Country:     "India",
			DisplayName: joinCityState("Unknown", state),
		}
		if loc.DisplayName == "" {
			loc.DisplayName = formatCoordinates(gps.Latitude, gps.Longitude)
		}
		return loc
	}

	loc := types.LocationInfo{
		Coordinates: gps,
		City:        addr.City,
		State:       addr.State,
		District:    addr.District,
		Pincode:     addr.Pincode,
		Country:     addr.Country,
		DisplayName: joinCityState(addr.City, addr.State),
	}
	if loc.Country == "" {
		loc.Country = "India"
	}
	if loc.DisplayName == "" {
		loc.DisplayName = addr.FullAddress
	}
	if loc.DisplayName == "" {
		loc.DisplayName = formatCoordinates(gps.Latitude, gps.Longitude)
	}
	return loc
}

func joinCityState(city, state string) string {
	if city != "" && state != "" {
		return city + ", " + state
	}
	return ""
}

func formatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lon)
}

func userField(user *types.User, get func(*types.User) string) string {
	if user == nil {
		return ""
	}
	return get(user)
}
