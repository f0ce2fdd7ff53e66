package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"go-cropsense/types"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type Fetcher struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// openWeatherResponse mirrors the fields of the current-conditions payload
// that we actually read.
type openWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain struct {
		OneHour   float64 `json:"1h"`
		ThreeHour float64 `json:"3h"`
	} `json:"rain"`
}

// Fetch resolves current weather for a location. It prefers the coordinate
// query, then walks an ordered list of text variants, and resolves to the
// "data unavailable" sentinel when every path fails. It never returns an
// error: weather is context, not a hard dependency.
func (f *Fetcher) Fetch(loc types.LocationInfo) types.WeatherSnapshot {
	if f.APIKey == "" {
		return DefaultSnapshot()
	}

	if loc.Coordinates != nil && loc.Coordinates.Latitude != 0 && loc.Coordinates.Longitude != 0 {
		query := fmt.Sprintf("lat=%f&lon=%f", loc.Coordinates.Latitude, loc.Coordinates.Longitude)
		if data, err := f.query(query); err == nil {
			return toSnapshot(data)
		}
	}

	for _, variant := range locationVariants(loc) {
		data, err := f.query("q=" + url.QueryEscape(variant))
		if err != nil {
			continue
		}
		return toSnapshot(data)
	}

	return DefaultSnapshot()
}

func (f *Fetcher) query(params string) (*openWeatherResponse, error) {
	reqURL := fmt.Sprintf("%s?%s&appid=%s&units=metric", f.BaseURL, params, f.APIKey)

	resp, err := f.Client.Get(reqURL)
	if err != nil {
		log.Printf("Error fetching weather data: %v", err)
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("Error unmarshaling weather JSON: %v", err)
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}
	return &data, nil
}

// locationVariants is the fallback query order: pincode, city, display name,
// then "city,state,IN". Empty entries are skipped.
func locationVariants(loc types.LocationInfo) []string {
	candidates := []string{
		loc.Pincode,
		loc.City,
		loc.DisplayName,
	}
	if loc.City != "" && loc.State != "" {
		candidates = append(candidates, fmt.Sprintf("%s,%s,IN", loc.City, loc.State))
	}

	variants := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" {
			variants = append(variants, c)
		}
	}
	return variants
}

func toSnapshot(data *openWeatherResponse) types.WeatherSnapshot {
	snap := types.WeatherSnapshot{
		Temperature:  fmt.Sprintf("%d", int(math.Round(data.Main.Temp))),
		Humidity:     fmt.Sprintf("%d", data.Main.Humidity),
		WindSpeed:    fmt.Sprintf("%d", int(math.Round(data.Wind.Speed*3.6))), // m/s to km/h
		Pressure:     data.Main.Pressure,
		LocationName: data.Name,
	}
	if len(data.Weather) > 0 {
		snap.Condition = data.Weather[0].Main
		snap.Description = data.Weather[0].Description
		snap.Icon = data.Weather[0].Icon
	}
	snap.Rainfall = data.Rain.OneHour
	if snap.Rainfall == 0 {
		snap.Rainfall = data.Rain.ThreeHour
	}
	return snap
}

// DefaultSnapshot is the sentinel returned when every fetch path fails.
func DefaultSnapshot() types.WeatherSnapshot {
	return types.WeatherSnapshot{
		Temperature: "N/A",
		Condition:   "Data Unavailable",
		Humidity:    "N/A",
		Rainfall:    0,
		WindSpeed:   "N/A",
	}
}
