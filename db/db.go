package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
	initErr    error
)

// InitFirestore initializes and returns a Firestore client. The caller decides
// whether a failure is fatal.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		// Credentials arrive as base64-encoded service account JSON.
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("failed to decode Firestore credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}

		client, initErr = app.Firestore(context.Background())
	})

	return client, initErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
