package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go-cropsense/db"
	"go-cropsense/llm"
	"go-cropsense/products"
	"go-cropsense/prompt"
	"go-cropsense/types"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

// ModelClient is the LLM surface the handlers depend on. Satisfied by
// *llm.Client; tests substitute a canned implementation.
type ModelClient interface {
	DiagnoseComprehensive(ctx context.Context, systemPrompt, userText, image string) (types.DiagnosisResult, error)
	IdentifyCrops(ctx context.Context, image string) (types.CropIdentification, error)
	ChatReply(ctx context.Context, contextPrompt, message, image, languageName string) (string, error)
}

type DetectHandler struct {
	store    *firestore.Client
	llm      ModelClient
	enricher *products.Enricher
}

func NewDetectHandler(store *firestore.Client, llmClient ModelClient, enricher *products.Enricher) *DetectHandler {
	return &DetectHandler{store: store, llm: llmClient, enricher: enricher}
}

// DetectCrops identifies the crop in an uploaded image. The response always
// carries exactly three guesses.
func (h *DetectHandler) DetectCrops(c *gin.Context) {
	var req types.DetectCropsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}

	identification, err := h.llm.IdentifyCrops(c.Request.Context(), req.Image)
	if err != nil {
		log.Printf("Crop detection error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Crop detection failed",
			"error":   err.Error(),
			"type":    "error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":         "crop-detection",
		"crops":        identification.Crops,
		"analysisNote": identification.AnalysisNote,
		"timestamp":    time.Now().Format(time.RFC3339),
	})
}

// DetectComprehensive runs the multi-source diagnosis: image + farmer input +
// weather, in the user's preferred language, with treatment enrichment and a
// best-effort history write.
func (h *DetectHandler) DetectComprehensive(c *gin.Context) {
	var req types.ComprehensiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Validation fails fast, before any external call.
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}
	if req.SelectedCrop == nil || req.SelectedCrop.Name == "" || req.FarmerInput == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Crop selection and farmer input are required"})
		return
	}

	ctx := c.Request.Context()

	// Language preference lookup is best-effort; any failure keeps the default.
	userLanguage := "bengali"
	if h.store != nil {
		user, err := db.GetUserByID(ctx, h.store, req.UserID)
		if err != nil {
			log.Printf("Database error while fetching user: %v", err)
		} else if user != nil && user.Language != "" {
			userLanguage = strings.ToLower(user.Language)
		} else {
			log.Println("User not found or no language preference, using default")
		}
	}

	displayLanguage := prompt.DisplayLanguage(userLanguage)
	speechLang := prompt.SpeechLanguage(userLanguage)

	var weatherInsights []string
	if req.WeatherData != nil {
		weatherInsights = prompt.WeatherInsights(*req.WeatherData)
	}

	systemPrompt := prompt.BuildComprehensiveSystem(
		req.SelectedCrop.Name, req.FarmerInput, req.WeatherData, weatherInsights, displayLanguage,
	)

	userText := fmt.Sprintf("Analyze this %s image for diseases. The farmer reports: %q.", req.SelectedCrop.Name, req.FarmerInput)
	if len(weatherInsights) > 0 {
		userText += " Weather conditions suggest: " + strings.Join(weatherInsights, ", ") + "."
	}
	userText += fmt.Sprintf(" Provide comprehensive diagnosis in %s.", displayLanguage)

	diagnosis, err := h.llm.DiagnoseComprehensive(ctx, systemPrompt, userText, req.Image)
	if err != nil {
		log.Printf("Comprehensive detection error: %v", err)
		message := "Comprehensive analysis failed"
		if errors.Is(err, llm.ErrNoJSON) || errors.Is(err, llm.ErrBadJSON) {
			message = "Failed to parse AI response"
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": message,
			"error":   err.Error(),
			"type":    "error",
		})
		return
	}

	diagnosis.Treatments = h.enricher.Enrich(diagnosis.Treatments)

	if h.store != nil {
		go db.SaveDetection(context.Background(), h.store, types.DetectionRecord{
			UserID:      req.UserID,
			Crop:        req.SelectedCrop.Name,
			Disease:     diagnosis.Disease,
			Accuracy:    diagnosis.Accuracy,
			Confidence:  diagnosis.Confidence,
			FarmerInput: req.FarmerInput,
			Weather:     req.WeatherData,
			Location:    req.Location,
			Language:    userLanguage,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"type":                      "comprehensive-detection",
		"disease":                   diagnosis.Disease,
		"description":               diagnosis.Description,
		"confidence":                diagnosis.Confidence,
		"accuracy":                  diagnosis.Accuracy,
		"severity":                  diagnosis.Severity,
		"imageFindings":             diagnosis.ImageFindings,
		"farmerObservationAnalysis": diagnosis.FarmerObservationAnalysis,
		"contributingFactors":       diagnosis.ContributingFactors,
		"causes":                    diagnosis.Causes,
		"treatments":                diagnosis.Treatments,
		"prevention":                diagnosis.Prevention,
		"urgency":                   diagnosis.Urgency,
		"expectedOutcome":           diagnosis.ExpectedOutcome,
		"riskIfUntreated":           diagnosis.RiskIfUntreated,
		"crop":                      req.SelectedCrop,
		"weather":                   req.WeatherData,
		"weatherInsights":           weatherInsights,
		"language":                  userLanguage,
		"displayLanguage":           displayLanguage,
		"speechLang":                speechLang,
		"timestamp":                 time.Now().Format(time.RFC3339),
	})
}

// Detect is the conversational follow-up on a prior diagnosis: the farmer
// asks further questions with the earlier exchange as context.
func (h *DetectHandler) Detect(c *gin.Context) {
	var req types.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	contextPrompt := followUpContext(req.ConversationHistory)

	response, err := h.llm.ChatReply(c.Request.Context(), contextPrompt, req.Message, req.Image, "English")
	if err != nil {
		log.Printf("Detection follow-up error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Detection failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"type":      "detection-followup",
		"response":  response,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func followUpContext(history []types.ChatMessage) string {
	base := "You are an expert agricultural assistant. The farmer is following up on a crop disease diagnosis. Answer their questions about treatments, prevention and application practically and concisely."
	if len(history) == 0 {
		return base
	}

	turns := history
	if len(turns) > 5 {
		turns = turns[len(turns)-5:]
	}
	var lines []string
	for _, msg := range turns {
		lines = append(lines, msg.Role+": "+msg.Content)
	}
	return base + "\n\nPrevious conversation:\n" + strings.Join(lines, "\n")
}

// History returns the caller's stored diagnosis records, newest first.
func (h *DetectHandler) History(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	records, err := db.GetDetections(c.Request.Context(), h.store, userID, 20)
	if err != nil {
		log.Printf("History fetch error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detections": records})
}
