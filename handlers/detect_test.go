package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-cropsense/llm"
	"go-cropsense/products"
	"go-cropsense/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedModel returns fixed results so handler behavior can be asserted
// without a live provider.
type cannedModel struct {
	diagnosis types.DiagnosisResult
	err       error
}

func (m cannedModel) DiagnoseComprehensive(ctx context.Context, systemPrompt, userText, image string) (types.DiagnosisResult, error) {
	return m.diagnosis, m.err
}

func (m cannedModel) IdentifyCrops(ctx context.Context, image string) (types.CropIdentification, error) {
	return types.CropIdentification{Crops: llm.PadCrops(nil)}, m.err
}

func (m cannedModel) ChatReply(ctx context.Context, contextPrompt, message, image, languageName string) (string, error) {
	return "canned reply", m.err
}

type stubPrices struct{}

func (stubPrices) PriceIn(min, max int) int { return max }
func (stubPrices) Rating() string           { return "4.5" }
func (stubPrices) InStock() bool            { return true }

func detectTestRouter(model ModelClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	enricher := &products.Enricher{
		Images: products.NewImageResolver(""),
		Prices: stubPrices{},
	}
	h := NewDetectHandler(nil, model, enricher)

	r := gin.New()
	r.POST("/api/detect-comprehensive", h.DetectComprehensive)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestDetectComprehensiveFullResponse(t *testing.T) {
	model := cannedModel{
		diagnosis: types.DiagnosisResult{
			Disease:     "Early Blight",
			Description: "Fungal infection of the foliage",
			Confidence:  88,
			Accuracy:    91,
			Severity:    "Moderate",
			Treatments: []types.Treatment{
				{Name: "Spray mancozeb", SearchTerm: "mancozeb fungicide", Priority: "High"},
				{Name: "Neem oil application", SearchTerm: "neem oil insecticide", Priority: "Medium"},
			},
			Urgency: "Within 3 days",
		},
	}
	r := detectTestRouter(model)

	w := postJSON(t, r, "/api/detect-comprehensive", gin.H{
		"image":        "data:image/jpeg;base64,dGVzdA==",
		"selectedCrop": gin.H{"name": "Tomato"},
		"farmerInput":  "leaves have brown spots with rings",
		"userId":       "user-123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Type       string            `json:"type"`
		Disease    string            `json:"disease"`
		Confidence int               `json:"confidence"`
		Accuracy   int               `json:"accuracy"`
		Treatments []types.Treatment `json:"treatments"`
		Crop       struct {
			Name string `json:"name"`
		} `json:"crop"`
		Language        string `json:"language"`
		DisplayLanguage string `json:"displayLanguage"`
		SpeechLang      string `json:"speechLang"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "comprehensive-detection", resp.Type)
	assert.Equal(t, "Early Blight", resp.Disease)
	assert.Equal(t, 88, resp.Confidence)
	assert.Equal(t, 91, resp.Accuracy)
	assert.Equal(t, "Tomato", resp.Crop.Name)
	// No stored profile: language defaults.
	assert.Equal(t, "bengali", resp.Language)
	assert.Equal(t, "Bengali (বাংলা)", resp.DisplayLanguage)
	assert.Equal(t, "bn-IN", resp.SpeechLang)

	require.Len(t, resp.Treatments, 2)
	for _, treatment := range resp.Treatments {
		require.NotEmpty(t, treatment.Products)
		assert.LessOrEqual(t, len(treatment.Products), 3)
		for i := 1; i < len(treatment.Products); i++ {
			assert.GreaterOrEqual(t, treatment.Products[i-1].Price, treatment.Products[i].Price)
		}
	}
}

func TestDetectComprehensiveValidation(t *testing.T) {
	r := detectTestRouter(cannedModel{})

	// Missing user ID.
	w := postJSON(t, r, "/api/detect-comprehensive", gin.H{
		"image":        "img",
		"selectedCrop": gin.H{"name": "Tomato"},
		"farmerInput":  "spots",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User ID is required")

	// Missing crop selection and farmer input.
	w = postJSON(t, r, "/api/detect-comprehensive", gin.H{
		"image":  "img",
		"userId": "user-123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Crop selection and farmer input are required")
}

func TestDetectComprehensiveUnparseableModelOutput(t *testing.T) {
	r := detectTestRouter(cannedModel{
		err: fmt.Errorf("%w: unexpected end of JSON input", llm.ErrBadJSON),
	})

	w := postJSON(t, r, "/api/detect-comprehensive", gin.H{
		"image":        "img",
		"selectedCrop": gin.H{"name": "Tomato"},
		"farmerInput":  "spots",
		"userId":       "user-123",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to parse AI response")
}
