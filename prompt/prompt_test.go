package prompt

import (
	"strings"
	"testing"

	"go-cropsense/types"

	"github.com/stretchr/testify/assert"
)

func testUser() *types.User {
	return &types.User{
		Name:     "Ravi",
		FarmSize: "2 acres",
		Crops:    []string{"Rice", "Potato"},
	}
}

func TestBuildChatContextLanguageInstruction(t *testing.T) {
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Kolkata, West Bengal"},
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "bn", nil)

	assert.Contains(t, ctx, "Respond ONLY in Bengali (বাংলা) language")
	assert.Contains(t, ctx, "You are AgriBot")
	assert.Contains(t, ctx, "Name: Ravi")
	assert.Contains(t, ctx, "Crops: Rice, Potato")
}

func TestBuildChatContextUnknownLanguageDefaultsEnglish(t *testing.T) {
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Delhi"},
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "xx", nil)
	assert.Contains(t, ctx, "Respond ONLY in English language")
}

func TestBuildChatContextPincodeDisplay(t *testing.T) {
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Kolkata", Pincode: "700001"},
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "en", nil)
	assert.Contains(t, ctx, "Kolkata (PIN: 700001)")
}

func TestBuildChatContextCoordinatesLine(t *testing.T) {
	loc := types.LocationInfo{
		DisplayName: "Kolkata",
		Coordinates: &types.Coordinates{Latitude: 22.5726, Longitude: 88.3639},
	}
	ctx := BuildChatContext(testUser(), loc,
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "en", nil)
	assert.Contains(t, ctx, "GPS Coordinates: 22.5726, 88.3639")
}

func TestBuildChatContextHistoryTruncatedToFive(t *testing.T) {
	history := []types.ChatMessage{
		{Role: "user", Content: "turn one"},
		{Role: "assistant", Content: "turn two"},
		{Role: "user", Content: "turn three"},
		{Role: "assistant", Content: "turn four"},
		{Role: "user", Content: "turn five"},
		{Role: "assistant", Content: "turn six"},
		{Role: "user", Content: "turn seven"},
	}
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Delhi"},
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "en", history)

	assert.Contains(t, ctx, "Previous conversation:")
	assert.NotContains(t, ctx, "turn one")
	assert.NotContains(t, ctx, "turn two")
	assert.Contains(t, ctx, "turn three")
	assert.Contains(t, ctx, "turn seven")
}

func TestBuildChatContextNoHistoryOmitsBlock(t *testing.T) {
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Delhi"},
		types.WeatherSnapshot{}, types.MarketReport{}, types.CropAdvisory{}, "en", nil)
	assert.NotContains(t, ctx, "Previous conversation:")
}

func TestBuildChatContextMarketPrices(t *testing.T) {
	market := types.MarketReport{
		State: "Punjab",
		Prices: []types.MarketPrice{
			{Crop: "Wheat", Price: "2450", Unit: "quintal", Change: "↑ +3%"},
		},
	}
	ctx := BuildChatContext(testUser(), types.LocationInfo{DisplayName: "Ludhiana", State: "Punjab"},
		types.WeatherSnapshot{}, market, types.CropAdvisory{}, "en", nil)
	assert.Contains(t, ctx, "Current Market Prices in Punjab:")
	assert.Contains(t, ctx, "- Wheat: ₹2450/quintal (↑ +3%)")
}

func TestWeatherInsightsHighHumidityAndHeat(t *testing.T) {
	insights := WeatherInsights(types.WeatherConditions{Humidity: 85, Temperature: 32})
	joined := strings.Join(insights, "\n")
	assert.Contains(t, joined, "High humidity (85%)")
	assert.Contains(t, joined, "High temperature (32°C)")
}

func TestWeatherInsightsColdAndRain(t *testing.T) {
	insights := WeatherInsights(types.WeatherConditions{Humidity: 60, Temperature: 10, Precipitation: 8})
	joined := strings.Join(insights, "\n")
	assert.Contains(t, joined, "Low temperature (10°C)")
	assert.Contains(t, joined, "Recent rainfall (8mm)")
}

func TestWeatherInsightsDryConditions(t *testing.T) {
	insights := WeatherInsights(types.WeatherConditions{Humidity: 30, Temperature: 25, Precipitation: 0})
	joined := strings.Join(insights, "\n")
	assert.Contains(t, joined, "Dry conditions")
}

func TestWeatherInsightsStrongWind(t *testing.T) {
	insights := WeatherInsights(types.WeatherConditions{Humidity: 50, Temperature: 25, WindSpeed: 25})
	joined := strings.Join(insights, "\n")
	assert.Contains(t, joined, "Strong winds (25km/h)")
}

func TestWeatherInsightsModerateConditionsEmpty(t *testing.T) {
	insights := WeatherInsights(types.WeatherConditions{Humidity: 60, Temperature: 25, Precipitation: 1, WindSpeed: 10})
	assert.Empty(t, insights)
}

func TestBuildComprehensiveSystemSearchTermStaysEnglish(t *testing.T) {
	system := BuildComprehensiveSystem("Rice (Paddy)", "leaves turning yellow", nil, nil, "Bengali (বাংলা)")

	assert.Contains(t, system, "Selected Crop: Rice (Paddy)")
	assert.Contains(t, system, "Farmer's Description: leaves turning yellow")
	assert.Contains(t, system, "respond in Bengali (বাংলা) language ONLY")
	assert.Contains(t, system, `"searchTerm": "English product name for shopping"`)
	// No weather block when conditions are unknown.
	assert.NotContains(t, system, "Weather Conditions:")
}

func TestBuildComprehensiveSystemWeatherBlock(t *testing.T) {
	conditions := &types.WeatherConditions{
		Temperature:   31,
		Humidity:      84,
		Precipitation: 2,
		WindSpeed:     12,
		Location:      "Kolkata",
	}
	insights := WeatherInsights(*conditions)
	system := BuildComprehensiveSystem("Potato", "brown spots", conditions, insights, "Hindi (हिंदी)")

	assert.Contains(t, system, "Weather Conditions:")
	assert.Contains(t, system, "Temperature: 31°C")
	assert.Contains(t, system, "Location: Kolkata")
	assert.Contains(t, system, "Weather Impact Analysis:")
	assert.Contains(t, system, "- High humidity (84%)")
}

func TestLanguageHelpers(t *testing.T) {
	assert.Equal(t, "Hindi (हिंदी)", LanguageName("hi"))
	assert.Equal(t, "English", LanguageName(""))

	assert.Equal(t, "Bengali (বাংলা)", DisplayLanguage("bengali"))
	assert.Equal(t, "Hindi (हिंदी)", DisplayLanguage("klingon"))

	assert.Equal(t, "ta-IN", SpeechLanguage("tamil"))
	assert.Equal(t, "hi-IN", SpeechLanguage("unknown"))
}
