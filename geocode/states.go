package geocode

// stateBounds is a rough bounding box for a major Indian state, used as the
// offline last resort when reverse geocoding is unreachable.
type stateBounds struct {
	minLat, maxLat float64
	minLon, maxLon float64
	name           string
}

var stateTable = []stateBounds{
	{22.5, 24.9, 87.7, 89.0, "West Bengal"},
	{18.9, 20.2, 72.7, 73.3, "Maharashtra"},
	{28.4, 28.9, 76.8, 77.4, "Delhi"},
	{12.8, 13.2, 77.4, 77.8, "Karnataka"},
	{12.9, 13.2, 80.1, 80.3, "Tamil Nadu"},
	{17.3, 17.5, 78.3, 78.6, "Telangana"},
	{26.8, 27.0, 80.8, 81.0, "Uttar Pradesh"},
	{23.0, 23.3, 72.5, 72.7, "Gujarat"},
	{26.8, 27.0, 75.7, 75.9, "Rajasthan"},
	{30.7, 30.8, 76.7, 76.9, "Punjab"},
}

// StateFromCoordinates approximates a state from raw coordinates. Returns
// "India" when no box matches.
func StateFromCoordinates(lat, lon float64) string {
	for _, b := range stateTable {
		if lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon {
			return b.name
		}
	}
	return "India"
}

// pincodeStates maps the leading two pincode digits to a state.
var pincodeStates = map[string]string{
	"11": "Delhi", "12": "Haryana", "13": "Punjab", "20": "Uttar Pradesh",
	"30": "Rajasthan", "36": "Gujarat", "40": "Maharashtra", "50": "Telangana",
	"56": "Karnataka", "60": "Tamil Nadu", "67": "Kerala", "70": "West Bengal",
	"75": "Odisha", "80": "Bihar",
}

// StateFromPincode resolves a state from a pincode prefix, defaulting to Delhi.
func StateFromPincode(pincode string) string {
	if len(pincode) < 2 {
		return "Delhi"
	}
	if state, ok := pincodeStates[pincode[:2]]; ok {
		return state
	}
	return "Delhi"
}
