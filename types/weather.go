package types

// WeatherSnapshot is the request-scoped weather record used for chat context.
// Numeric-looking fields are strings so a failed fetch can carry the "N/A"
// sentinel instead of a fake zero.
type WeatherSnapshot struct {
	Temperature  string  `json:"temperature"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description,omitempty"`
	Humidity     string  `json:"humidity"`
	Rainfall     float64 `json:"rainfall"`
	WindSpeed    string  `json:"windSpeed"`
	Pressure     int     `json:"pressure,omitempty"`
	Icon         string  `json:"icon,omitempty"`
	LocationName string  `json:"locationName,omitempty"`
}

// WeatherConditions is the numeric weather payload the detection UI sends
// along with an image. Separate from WeatherSnapshot because here the client
// already resolved the values.
type WeatherConditions struct {
	Temperature   float64 `json:"temperature" firestore:"temperature"`
	Humidity      float64 `json:"humidity" firestore:"humidity"`
	Precipitation float64 `json:"precipitation" firestore:"precipitation"`
	WindSpeed     float64 `json:"windSpeed" firestore:"windSpeed"`
	Location      string  `json:"location,omitempty" firestore:"location,omitempty"`
}
