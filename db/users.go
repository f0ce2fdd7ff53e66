package db

import (
	"context"
	"fmt"
	"time"

	"go-cropsense/types"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// CreateUser stores a new user document and returns its generated ID.
// The caller is expected to have checked for a duplicate email first.
func CreateUser(ctx context.Context, client *firestore.Client, user types.User) (string, error) {
	id := uuid.NewString()
	user.CreatedAt = time.Now()

	_, err := client.Collection(usersCollection).Doc(id).Set(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUserByEmail looks a user up by email. Returns (nil, nil) when no user
// exists so callers can distinguish "not found" from a store error.
func GetUserByEmail(ctx context.Context, client *firestore.Client, email string) (*types.User, error) {
	docs, err := client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user types.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user doc: %w", err)
	}
	user.ID = docs[0].Ref.ID
	return &user, nil
}

func GetUserByID(ctx context.Context, client *firestore.Client, id string) (*types.User, error) {
	doc, err := client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	var user types.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user doc: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUserLocation caches a freshly resolved location onto the profile.
// Last write wins; the location fields are a cache, not a source of truth.
func UpdateUserLocation(ctx context.Context, client *firestore.Client, userID string, loc types.LocationInfo) error {
	data := map[string]interface{}{
		"location":          loc.DisplayName,
		"city":              loc.City,
		"state":             loc.State,
		"district":          loc.District,
		"pincode":           loc.Pincode,
		"locationUpdatedAt": time.Now(),
	}
	if loc.Coordinates != nil {
		data["gpsCoordinates"] = map[string]interface{}{
			"latitude":  loc.Coordinates.Latitude,
			"longitude": loc.Coordinates.Longitude,
		}
	}

	_, err := client.Collection(usersCollection).Doc(userID).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update location for user %s: %w", userID, err)
	}
	return nil
}
