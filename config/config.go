package config

import "os"

// Config holds every environment-provided setting. Missing third-party keys
// are a degraded mode handled by the individual fetchers, not a startup error.
type Config struct {
	Port                string
	ClientURL           string
	JWTSecret           string
	FirebaseCredentials string
	OpenAIKey           string
	MapsKey             string
	OpenWeatherKey      string
	DataGovInKey        string
	UnsplashKey         string
	RedisAddr           string
}

func Load() Config {
	cfg := Config{
		Port:                os.Getenv("PORT"),
		ClientURL:           os.Getenv("CLIENT_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		MapsKey:             os.Getenv("MAPS_CREDENTIALS"),
		OpenWeatherKey:      os.Getenv("OPENWEATHER_API_KEY"),
		DataGovInKey:        os.Getenv("DATA_GOV_IN_API_KEY"),
		UnsplashKey:         os.Getenv("UNSPLASH_ACCESS_KEY"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
