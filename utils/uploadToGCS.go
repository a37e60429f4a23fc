package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func getGCSBucket() (string, error) {
	bucketName := os.Getenv("GCS_BUCKET")
	if bucketName == "" {
		return "", fmt.Errorf("GCS_BUCKET is not set")
	}
	return bucketName, nil
}

// newGCSClient prefers inline credentials so the service can run outside
// GCP (local imports, CI) without a metadata server.
func newGCSClient(ctx context.Context) (*storage.Client, error) {
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); credJSON != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

// UploadBytesToGCS archives a raw workbook snapshot under the configured
// bucket and returns the gs:// path. Archival is best effort; callers
// treat a failure here as non fatal.
func UploadBytesToGCS(ctx context.Context, objectName string, content []byte, contentType string) (string, error) {
	bucketName, err := getGCSBucket()
	if err != nil {
		return "", err
	}

	client, err := newGCSClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, time.Second*50)
	defer cancel()

	wc := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(content); err != nil {
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("gs://%s/%s", bucketName, objectName), nil
}

// UploadReaderToGCS streams reader content into the archive bucket.
func UploadReaderToGCS(ctx context.Context, objectName string, reader io.Reader, contentType string) (string, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return UploadBytesToGCS(ctx, objectName, content, contentType)
}

// ObjectExistsInGCS reports whether an archived snapshot is present.
func ObjectExistsInGCS(ctx context.Context, objectName string) (bool, error) {
	bucketName, err := getGCSBucket()
	if err != nil {
		return false, err
	}

	client, err := newGCSClient(ctx)
	if err != nil {
		return false, err
	}
	defer client.Close()

	_, err = client.Bucket(bucketName).Object(objectName).Attrs(ctx)
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
