package gcp

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
)

const downloadTimeout = 2 * time.Minute

// DownloadObject copies a Cloud Storage object into w.
func DownloadObject(ctx context.Context, w io.Writer, bucketName, objectName string) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("storage.NewClient: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	rc, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return fmt.Errorf("Object(%q).NewReader: %w", objectName, err)
	}
	defer rc.Close()

	n, err := io.Copy(w, rc)
	if err != nil {
		return fmt.Errorf("io.Copy: %w", err)
	}

	log.Debug().
		Str("bucket", bucketName).
		Str("objectName", objectName).
		Int64("bytes", n).
		Msg("Blob downloaded successfully")
	return nil
}
