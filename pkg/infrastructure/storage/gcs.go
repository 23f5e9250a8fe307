package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"cloud.google.com/go/storage"
)

// StorageAdapter provides blob storage operations using Google Cloud Storage
type StorageAdapter struct {
	Client *storage.Client
	Bucket string
}

func (a *StorageAdapter) Write(ctx context.Context, objectName string, data []byte) error {
	// GCS object writes are atomic: the new generation only becomes visible on Close.
	wc := a.Client.Bucket(a.Bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = "application/json"
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func (a *StorageAdapter) Read(ctx context.Context, objectName string) ([]byte, error) {
	rc, err := a.Client.Bucket(a.Bucket).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, mapReadError(a.Bucket, objectName, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// mapReadError turns a missing object into fs.ErrNotExist, the signal the
// record store treats as an empty collection.
func mapReadError(bucket, objectName string, err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gs://%s/%s: %w", bucket, objectName, fs.ErrNotExist)
	}
	return err
}
