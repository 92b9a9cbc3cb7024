package pipeline

import (
	"context"
	"fmt"

	"github.com/kurochkinivan/image_processor/internal/domain"
)

// Aggregator is the read-only projection of a request and its products.
type Aggregator struct {
	requests RequestStore
	products ProductStore
}

func NewAggregator(requests RequestStore, products ProductStore) *Aggregator {
	return &Aggregator{
		requests: requests,
		products: products,
	}
}

func (a *Aggregator) RequestStatus(ctx context.Context, requestID string) (*domain.RequestStatus, error) {
	req, err := a.requests.RequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	products, err := a.products.ProductsByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	return &domain.RequestStatus{
		Request:  req,
		Products: products,
	}, nil
}
