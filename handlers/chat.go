package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"go-cropsense/advisory"
	"go-cropsense/db"
	"go-cropsense/location"
	"go-cropsense/market"
	"go-cropsense/prompt"
	"go-cropsense/types"
	"go-cropsense/weather"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	store    *firestore.Client
	resolver *location.Resolver
	weather  *weather.Fetcher
	market   *market.Fetcher
	llm      ModelClient
}

func NewChatHandler(
	store *firestore.Client,
	resolver *location.Resolver,
	weatherFetcher *weather.Fetcher,
	marketFetcher *market.Fetcher,
	llmClient ModelClient,
) *ChatHandler {
	return &ChatHandler{
		store:    store,
		resolver: resolver,
		weather:  weatherFetcher,
		market:   marketFetcher,
		llm:      llmClient,
	}
}

// Chat runs the full aggregation pipeline: resolve location, fetch weather
// and market prices concurrently, compose the context prompt, call the model
// and save the exchange best-effort.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := c.GetString(ContextUserID)

	user, err := db.GetUserByID(ctx, h.store, userID)
	if err != nil {
		log.Printf("Chat user lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	locationInfo := h.resolver.Resolve(ctx, req.GPSLocation, user)

	userLanguage := req.Language
	if userLanguage == "" {
		userLanguage = user.Language
	}
	if userLanguage == "" {
		userLanguage = "en"
	}

	log.Printf("Chat using location: %s", locationInfo.DisplayName)

	// Weather and market prices are independent; fetch them in parallel.
	var (
		weatherData types.WeatherSnapshot
		marketData  types.MarketReport
		wg          sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		weatherData = h.weather.Fetch(locationInfo)
	}()
	go func() {
		defer wg.Done()
		marketData = h.market.Fetch(ctx, locationInfo.State)
	}()
	wg.Wait()

	cropAdvice := advisory.Current(time.Now())

	contextPrompt := prompt.BuildChatContext(
		user, locationInfo, weatherData, marketData, cropAdvice,
		userLanguage, req.ConversationHistory,
	)

	response, err := h.llm.ChatReply(ctx, contextPrompt, req.Message, req.Image, prompt.LanguageName(userLanguage))
	if err != nil {
		log.Printf("Chat completion error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request", "details": err.Error()})
		return
	}

	// History write is fire-and-forget; the response never waits on it.
	go db.SaveConversation(context.Background(), h.store, types.ConversationRecord{
		UserID:    user.ID,
		UserEmail: user.Email,
		Message:   req.Message,
		Response:  response,
		HadImage:  req.Image != "",
		Language:  userLanguage,
		Location:  locationInfo,
		Weather:   weatherData,
		Market:    marketData,
	})

	c.JSON(http.StatusOK, gin.H{
		"response":        response,
		"weatherData":     weatherData,
		"marketData":      marketData,
		"cropAdvice":      cropAdvice,
		"userLocation":    locationInfo.DisplayName,
		"locationDetails": locationInfo,
	})
}
