package shared

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"
)

// --- Storage Interfaces ---

// BlobStore reads and writes whole objects. Read must return an error
// matching fs.ErrNotExist when the object is absent.
type BlobStore interface {
	Write(ctx context.Context, object string, data []byte) error
	Read(ctx context.Context, object string) ([]byte, error)
}

// --- Messaging Interfaces ---

type Publisher interface {
	PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error)
}
