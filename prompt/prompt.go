package prompt

import (
	"fmt"
	"strings"

	"go-cropsense/types"
)

const maxHistoryTurns = 5

// BuildChatContext merges the user profile, resolved location, live weather,
// market prices and the seasonal advisory into the assistant instruction
// block. Pure string templating; the same inputs always produce the same
// prompt.
func BuildChatContext(
	user *types.User,
	loc types.LocationInfo,
	weather types.WeatherSnapshot,
	market types.MarketReport,
	advisory types.CropAdvisory,
	language string,
	history []types.ChatMessage,
) string {
	languageName := LanguageName(language)

	var conversationContext string
	if len(history) > 0 {
		turns := history
		if len(turns) > maxHistoryTurns {
			turns = turns[len(turns)-maxHistoryTurns:]
		}
		var lines []string
		for _, msg := range turns {
			lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
		}
		conversationContext = "\n\nPrevious conversation:\n" + strings.Join(lines, "\n")
	}

	locationDisplay := loc.DisplayName
	if loc.Pincode != "" {
		locationDisplay = fmt.Sprintf("%s (PIN: %s)", loc.DisplayName, loc.Pincode)
	}

	var coordsLine string
	if loc.Coordinates != nil {
		coordsLine = fmt.Sprintf("\n- GPS Coordinates: %.4f, %.4f",
			loc.Coordinates.Latitude, loc.Coordinates.Longitude)
	}

	farmSize := user.FarmSize
	if farmSize == "" {
		farmSize = "Not specified"
	}
	crops := strings.Join(user.Crops, ", ")
	if crops == "" {
		crops = "Not specified"
	}

	var priceLines []string
	for _, p := range market.Prices {
		priceLines = append(priceLines, fmt.Sprintf("- %s: ₹%s/%s (%s)", p.Crop, p.Price, p.Unit, p.Change))
	}

	marketRegion := loc.State
	if marketRegion == "" {
		marketRegion = loc.City
	}

	return fmt.Sprintf(`You are AgriBot, an expert AI agricultural assistant helping farmers in India.

User Profile:
- Name: %s
- Location: %s
- Farm Size: %s
- Crops: %s%s

Current Weather at Your Location:
- Temperature: %s°C
- Condition: %s
- Humidity: %s%%
- Rainfall: %.1fmm
- Wind Speed: %s km/h

Current Market Prices in %s:
%s

Today's Crop Advisory:
%s

IMPORTANT INSTRUCTIONS:
1. Respond ONLY in %s language
2. Be conversational and friendly, like talking to a fellow farmer
3. Provide practical, actionable advice specific to their exact location
4. Consider the current weather and market conditions
5. Use simple language that farmers can easily understand
6. Include specific measurements, timings, and quantities
7. Warn about weather-related risks if relevant
8. Suggest optimal market timing based on current prices%s

Provide helpful, accurate farming advice based on the user's question.`,
		user.Name, locationDisplay, farmSize, crops, coordsLine,
		weather.Temperature, weather.Condition, weather.Humidity, weather.Rainfall, weather.WindSpeed,
		marketRegion, strings.Join(priceLines, "\n"),
		strings.Join(advisory.Recommendations, "\n"),
		languageName, conversationContext)
}

// WeatherInsights derives disease-correlation notes from numeric weather
// conditions. The thresholds are the ones the diagnosis prompt was tuned with.
func WeatherInsights(w types.WeatherConditions) []string {
	var insights []string

	if w.Humidity > 80 {
		insights = append(insights, fmt.Sprintf("High humidity (%.0f%%) creates favorable conditions for fungal diseases", w.Humidity))
	}
	if w.Temperature > 30 {
		insights = append(insights, fmt.Sprintf("High temperature (%.0f°C) may stress plants and attract pests", w.Temperature))
	}
	if w.Temperature < 15 {
		insights = append(insights, fmt.Sprintf("Low temperature (%.0f°C) can slow growth and increase disease susceptibility", w.Temperature))
	}
	if w.Precipitation > 5 {
		insights = append(insights, fmt.Sprintf("Recent rainfall (%.0fmm) increases risk of water-borne diseases", w.Precipitation))
	} else if w.Precipitation == 0 && w.Humidity < 40 {
		insights = append(insights, "Dry conditions may cause drought stress and attract certain pests")
	}
	if w.WindSpeed > 20 {
		insights = append(insights, fmt.Sprintf("Strong winds (%.0fkm/h) can spread airborne diseases and pests", w.WindSpeed))
	}

	return insights
}

// BuildComprehensiveSystem is the system prompt for the three-source
// diagnosis call. All free text must come back in displayLanguage; searchTerm
// fields stay English so product lookup keeps working. The 40/30/30 accuracy
// weighting is a contract given to the model, not recomputed server-side.
func BuildComprehensiveSystem(
	crop string,
	farmerInput string,
	weather *types.WeatherConditions,
	insights []string,
	displayLanguage string,
) string {
	var weatherBlock string
	if weather != nil {
		var insightLines []string
		for _, insight := range insights {
			insightLines = append(insightLines, "- "+insight)
		}
		weatherBlock = fmt.Sprintf(`
Weather Conditions:
- Temperature: %.0f°C
- Humidity: %.0f%%
- Rainfall: %.0fmm
- Wind Speed: %.0fkm/h
- Location: %s

Weather Impact Analysis:
%s
`, weather.Temperature, weather.Humidity, weather.Precipitation, weather.WindSpeed,
			weather.Location, strings.Join(insightLines, "\n"))
	}

	return fmt.Sprintf(`You are an expert agricultural AI specializing in crop disease diagnosis. You have THREE sources of information:

1. IMAGE ANALYSIS: Visual inspection of crop images
2. FARMER OBSERVATIONS: Direct farmer input about symptoms
3. WEATHER DATA: Environmental conditions that affect disease patterns

Selected Crop: %s
Farmer's Description: %s
%s
CRITICAL: You MUST respond in %s language ONLY. All text fields must be in %s.

Your task is to provide a COMPREHENSIVE diagnosis by combining all three data sources. Calculate an accuracy score (0-100) based on:
- How well image analysis matches farmer description (40%% weight)
- Disease-weather correlation strength (30%% weight)
- Crop-specific disease likelihood (30%% weight)

Provide response in this JSON format (all text in %s):
{
  "disease": "specific disease name in %s",
  "description": "detailed explanation of the disease in %s",
  "confidence": 85,
  "accuracy": 92,
  "severity": "Mild/Moderate/Severe",
  "imageFindings": [
    "key visual observation 1 from image in %s",
    "key visual observation 2 from image in %s"
  ],
  "farmerObservationAnalysis": "how farmer's description aligns with disease patterns in %s",
  "contributingFactors": [
    "weather factor 1 contributing to this disease in %s",
    "weather factor 2 contributing to this disease in %s",
    "environmental factor in %s"
  ],
  "causes": [
    "primary cause in %s",
    "secondary cause in %s"
  ],
  "treatments": [
    {
      "name": "treatment name in %s",
      "description": "detailed application method in %s",
      "searchTerm": "English product name for shopping",
      "priority": "High/Medium/Low",
      "effectiveness": "percentage based on current conditions"
    }
  ],
  "prevention": [
    "prevention tip 1 specific to current weather in %s",
    "prevention tip 2 in %s"
  ],
  "urgency": "Immediate/Within 3 days/Within 1 week",
  "expectedOutcome": "what to expect if treated in %s",
  "riskIfUntreated": "consequences of no treatment in %s"
}`,
		crop, farmerInput, weatherBlock,
		displayLanguage, displayLanguage, displayLanguage,
		displayLanguage, displayLanguage, displayLanguage, displayLanguage,
		displayLanguage, displayLanguage, displayLanguage, displayLanguage,
		displayLanguage, displayLanguage, displayLanguage, displayLanguage,
		displayLanguage, displayLanguage, displayLanguage, displayLanguage)
}

// CropIdentificationSystem asks for the top 3 crop guesses as strict JSON.
const CropIdentificationSystem = `You are an expert agricultural AI specializing in crop identification. Analyze the uploaded image and identify the crop type.

Provide the TOP 3 most likely crop types with confidence scores.

Consider:
- Leaf shape, size, and color
- Plant structure and growth pattern
- Visible flowers, fruits, or seeds
- Field arrangement and spacing
- Regional agricultural patterns (if visible)

Return ONLY valid JSON in this exact format:
{
  "crops": [
    {"name": "Crop Name 1", "confidence": 95},
    {"name": "Crop Name 2", "confidence": 85},
    {"name": "Crop Name 3", "confidence": 75}
  ],
  "analysisNote": "Brief note about what you observed in the image"
}

Be specific with crop names (e.g., "Rice (Paddy)", "Wheat", "Cotton", "Tomato", "Potato", "Sugarcane", etc.).`
