package types

import "time"

// User is the stored profile document. Location fields act as a cache filled
// in whenever a fresh GPS resolution succeeds.
type User struct {
	ID                string       `json:"id" firestore:"-"`
	Name              string       `json:"name" firestore:"name"`
	Email             string       `json:"email" firestore:"email"`
	Password          string       `json:"-" firestore:"password"`
	Language          string       `json:"language,omitempty" firestore:"language,omitempty"`
	FarmSize          string       `json:"farmSize,omitempty" firestore:"farmSize,omitempty"`
	Crops             []string     `json:"crops,omitempty" firestore:"crops,omitempty"`
	Location          string       `json:"location,omitempty" firestore:"location,omitempty"`
	City              string       `json:"city,omitempty" firestore:"city,omitempty"`
	State             string       `json:"state,omitempty" firestore:"state,omitempty"`
	District          string       `json:"district,omitempty" firestore:"district,omitempty"`
	Pincode           string       `json:"pincode,omitempty" firestore:"pincode,omitempty"`
	GPSCoordinates    *Coordinates `json:"gpsCoordinates,omitempty" firestore:"gpsCoordinates,omitempty"`
	LocationUpdatedAt time.Time    `json:"-" firestore:"locationUpdatedAt,omitempty"`
	CreatedAt         time.Time    `json:"-" firestore:"createdAt"`
}

// DetectionRecord is the history document written after a diagnosis. Writing
// it is best-effort; the user-facing response never waits on it.
type DetectionRecord struct {
	ID          string             `firestore:"-"`
	UserID      string             `firestore:"userId"`
	Crop        string             `firestore:"crop"`
	Disease     string             `firestore:"disease"`
	Accuracy    int                `firestore:"accuracy"`
	Confidence  int                `firestore:"confidence"`
	FarmerInput string             `firestore:"farmerInput"`
	Weather     *WeatherConditions `firestore:"weatherData,omitempty"`
	Location    string             `firestore:"location,omitempty"`
	Language    string             `firestore:"language"`
	Timestamp   time.Time          `firestore:"timestamp"`
}

type ConversationRecord struct {
	UserID    string          `firestore:"userId"`
	UserEmail string          `firestore:"userEmail"`
	Message   string          `firestore:"message"`
	Response  string          `firestore:"response"`
	HadImage  bool            `firestore:"image"`
	Language  string          `firestore:"language"`
	Location  LocationInfo    `firestore:"location"`
	Weather   WeatherSnapshot `firestore:"weatherData"`
	Market    MarketReport    `firestore:"marketData"`
	Timestamp time.Time       `firestore:"timestamp"`
}
