package types

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string        `json:"message"`
	Image               string        `json:"image,omitempty"`
	Language            string        `json:"language,omitempty"`
	ConversationHistory []ChatMessage `json:"conversationHistory,omitempty"`
	GPSLocation         *Coordinates  `json:"gpsLocation,omitempty"`
}

type DetectCropsRequest struct {
	Image          string `json:"image"`
	MultipleImages bool   `json:"multipleImages,omitempty"`
}

type ComprehensiveRequest struct {
	Image        string             `json:"image"`
	SelectedCrop *SelectedCrop      `json:"selectedCrop"`
	FarmerInput  string             `json:"farmerInput"`
	WeatherData  *WeatherConditions `json:"weatherData,omitempty"`
	Location     string             `json:"location,omitempty"`
	UserID       string             `json:"userId"`
}

type DetectRequest struct {
	Message             string        `json:"message"`
	Image               string        `json:"image,omitempty"`
	ConversationHistory []ChatMessage `json:"conversationHistory,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
