package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// CreateFirestore opens a Firestore client for the project. When
// FIRESTORE_EMULATOR_HOST is set the client talks to the emulator.
func CreateFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return client, nil
}
