package types

type Coordinates struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
}

// LocationInfo is the normalized location record computed per request.
// DisplayName is always populated, falling back to raw coordinates or a
// default city when nothing better is known.
type LocationInfo struct {
	Coordinates *Coordinates `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	City        string       `json:"city,omitempty" firestore:"city,omitempty"`
	State       string       `json:"state,omitempty" firestore:"state,omitempty"`
	District    string       `json:"district,omitempty" firestore:"district,omitempty"`
	Pincode     string       `json:"pincode,omitempty" firestore:"pincode,omitempty"`
	Country     string       `json:"country,omitempty" firestore:"country,omitempty"`
	DisplayName string       `json:"displayName" firestore:"displayName"`
}

// GeocodedAddress holds the fields extracted from a reverse geocoding result.
type GeocodedAddress struct {
	City        string
	State       string
	District    string
	Pincode     string
	Country     string
	FullAddress string
}
