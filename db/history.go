package db

import (
	"context"
	"log"
	"time"

	"go-cropsense/types"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

const (
	detectionsCollection    = "disease_detections"
	conversationsCollection = "conversations"
)

// SaveDetection writes a diagnosis history record. History is a convenience
// feature: failures are logged and swallowed, never surfaced to the caller.
func SaveDetection(ctx context.Context, client *firestore.Client, record types.DetectionRecord) {
	record.Timestamp = time.Now()
	_, err := client.Collection(detectionsCollection).Doc(uuid.NewString()).Set(ctx, record)
	if err != nil {
		log.Printf("Failed to store detection for user %s: %v", record.UserID, err)
		return
	}
}

// SaveConversation stores a chat exchange, best-effort like SaveDetection.
func SaveConversation(ctx context.Context, client *firestore.Client, record types.ConversationRecord) {
	record.Timestamp = time.Now()
	_, err := client.Collection(conversationsCollection).Doc(uuid.NewString()).Set(ctx, record)
	if err != nil {
		log.Printf("Failed to store conversation for user %s: %v", record.UserID, err)
		return
	}
}

// GetDetections returns a user's stored diagnosis records, newest first.
func GetDetections(ctx context.Context, client *firestore.Client, userID string, limit int) ([]types.DetectionRecord, error) {
	docs, err := client.Collection(detectionsCollection).
		Where("userId", "==", userID).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	records := make([]types.DetectionRecord, 0, len(docs))
	for _, doc := range docs {
		var rec types.DetectionRecord
		if err := doc.DataTo(&rec); err != nil {
			log.Printf("Skipping malformed detection doc %s: %v", doc.Ref.ID, err)
			continue
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}
