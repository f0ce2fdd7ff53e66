package main

import (
	"fmt"
	"log"
	"os"

	"go-cropsense/auth"
	"go-cropsense/config"
	"go-cropsense/cronjobs"
	"go-cropsense/db"
	"go-cropsense/handlers"
	"go-cropsense/llm"
	"go-cropsense/location"
	"go-cropsense/market"
	"go-cropsense/products"
	"go-cropsense/routes"
	"go-cropsense/weather"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Print and check env
	if cfg.OpenAIKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
	}
	fmt.Println("CLIENT_URL: ", cfg.ClientURL)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Optional market price cache
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		fmt.Println("Redis market cache enabled")
	}

	authService := auth.NewService(cfg.JWTSecret)
	llmClient := llm.NewClient(cfg.OpenAIKey)
	weatherFetcher := weather.NewFetcher(cfg.OpenWeatherKey)
	marketFetcher := market.NewFetcher(cfg.DataGovInKey, cache)
	resolver := location.NewResolver(firestoreClient)
	enricher := products.NewEnricher(cfg.UnsplashKey)

	// Initialize cron jobs
	cronjobs.InitCronJobs(marketFetcher)

	secureCookie := os.Getenv("GIN_MODE") == "release"
	authHandler := handlers.NewAuthHandler(firestoreClient, authService, secureCookie)
	chatHandler := handlers.NewChatHandler(firestoreClient, resolver, weatherFetcher, marketFetcher, llmClient)
	detectHandler := handlers.NewDetectHandler(firestoreClient, llmClient, enricher)

	r := routes.SetupRouter(authService, authHandler, chatHandler, detectHandler)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
