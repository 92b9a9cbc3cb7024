package pipeline

import (
	"context"
	"time"

	"github.com/kurochkinivan/image_processor/internal/domain"
)

type RequestStore interface {
	RequestByID(ctx context.Context, requestID string) (*domain.ProcessingRequest, error)
	ClaimRequest(ctx context.Context, requestID string) (bool, error)
	FinishRequest(ctx context.Context, requestID string, status domain.Status, completedAt time.Time) (bool, error)
}

type ProductStore interface {
	ProductsByRequestID(ctx context.Context, requestID string) ([]*domain.Product, error)
	UpdateProductOutputs(ctx context.Context, product *domain.Product) error
}

type PendingRequestsProvider interface {
	PendingRequests(ctx context.Context) ([]string, error)
}

// ImageProcessor fetches one source URL, transforms the image and persists it
// under the given key. Failures are reported in the result, never as errors.
type ImageProcessor interface {
	Process(ctx context.Context, url, key string) domain.ImageResult
}

type ImageCompressor interface {
	Compress(data []byte) ([]byte, error)
}

type ImageStore interface {
	Save(ctx context.Context, key string, data []byte) (string, error)
}

// Notifier delivers the one-shot completion callback. Delivery is
// best-effort: failures are observable in logs only.
type Notifier interface {
	Notify(ctx context.Context, callbackURL, requestID string, status domain.Status)
}

type BatchProcessor interface {
	ProcessBatch(ctx context.Context, requestID string) error
}
