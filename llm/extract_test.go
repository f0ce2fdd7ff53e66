package llm

import (
	"testing"

	"go-cropsense/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	raw := "Here is the diagnosis:\n```json\n{\"disease\": \"Late Blight\", \"confidence\": 85}\n```\nLet me know if you need more."

	var out map[string]any
	err := ExtractJSON(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "Late Blight", out["disease"])
	assert.Equal(t, float64(85), out["confidence"])
}

func TestExtractJSONBareObjectWithProse(t *testing.T) {
	raw := `Sure! Based on the image, {"disease": "Powdery Mildew", "severity": "Moderate"} is my assessment.`

	var out map[string]any
	err := ExtractJSON(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "Powdery Mildew", out["disease"])
}

func TestExtractJSONNestedBraces(t *testing.T) {
	raw := `prefix {"a": {"b": 1}, "c": "has } in string"} suffix`

	var out map[string]any
	err := ExtractJSON(raw, &out)
	require.NoError(t, err)
	assert.Equal(t, "has } in string", out["c"])
}

func TestExtractJSONProseOnly(t *testing.T) {
	var out map[string]any
	err := ExtractJSON("I could not identify any disease in this image.", &out)
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractJSONMalformedCandidate(t *testing.T) {
	var out map[string]any
	err := ExtractJSON("```json\n{\"disease\": }\n```", &out)
	assert.ErrorIs(t, err, ErrBadJSON)
}

func TestExtractJSONMissingOptionalFieldsDefault(t *testing.T) {
	raw := `{"disease": "Leaf Spot", "confidence": 70}`

	var result types.DiagnosisResult
	err := ExtractJSON(raw, &result)
	require.NoError(t, err)

	normalizeDiagnosis(&result)
	assert.Equal(t, "Leaf Spot", result.Disease)
	assert.NotNil(t, result.Treatments)
	assert.Empty(t, result.Treatments)
	assert.NotNil(t, result.Causes)
	assert.NotNil(t, result.Prevention)
}

func TestNormalizeDiagnosisClampsScores(t *testing.T) {
	d := types.DiagnosisResult{Confidence: 150, Accuracy: -10}
	normalizeDiagnosis(&d)
	assert.Equal(t, 100, d.Confidence)
	assert.Equal(t, 0, d.Accuracy)
}

func TestPadCropsToThree(t *testing.T) {
	crops := PadCrops([]types.CropGuess{{Name: "Rice (Paddy)", Confidence: 92}})
	require.Len(t, crops, 3)

	assert.Equal(t, "Rice (Paddy)", crops[0].Name)
	// Synthetic entries have strictly decreasing confidence.
	assert.Greater(t, crops[1].Confidence, crops[2].Confidence)
	assert.Less(t, crops[1].Confidence, crops[0].Confidence)
}

func TestPadCropsTruncatesExtras(t *testing.T) {
	crops := PadCrops([]types.CropGuess{
		{Name: "A", Confidence: 90},
		{Name: "B", Confidence: 80},
		{Name: "C", Confidence: 70},
		{Name: "D", Confidence: 60},
	})
	assert.Len(t, crops, 3)
	assert.Equal(t, "C", crops[2].Name)
}

func TestPadCropsEmptyInput(t *testing.T) {
	crops := PadCrops(nil)
	require.Len(t, crops, 3)
	assert.Greater(t, crops[0].Confidence, crops[1].Confidence)
	assert.Greater(t, crops[1].Confidence, crops[2].Confidence)
}
