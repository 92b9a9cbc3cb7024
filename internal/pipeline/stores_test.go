package pipeline_test

import (
	"context"
	"sync"
	"time"

	"github.com/kurochkinivan/image_processor/internal/domain"
)

// memStore is a stateful in-memory RequestStore + ProductStore. The
// conditional transitions mirror the SQL guards in the real repository.
type memStore struct {
	mu          sync.Mutex
	request     *domain.ProcessingRequest
	products    []*domain.Product
	productsErr error
	finishCount int
	saveCount   int
}

func newMemStore(request *domain.ProcessingRequest, products ...*domain.Product) *memStore {
	return &memStore{
		request:  request,
		products: products,
	}
}

func (s *memStore) RequestByID(_ context.Context, requestID string) (*domain.ProcessingRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.request == nil || s.request.RequestID != requestID {
		return nil, domain.ErrRequestNotFound
	}

	return s.request, nil
}

func (s *memStore) ClaimRequest(_ context.Context, requestID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.request == nil || s.request.RequestID != requestID || s.request.Status != domain.StatusPending {
		return false, nil
	}

	s.request.Status = domain.StatusProcessing

	return true, nil
}

func (s *memStore) FinishRequest(_ context.Context, requestID string, status domain.Status, completedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.request == nil || s.request.RequestID != requestID || s.request.Status != domain.StatusProcessing {
		return false, nil
	}

	s.request.Status = status
	s.request.CompletedAt = &completedAt
	s.finishCount++

	return true, nil
}

func (s *memStore) ProductsByRequestID(_ context.Context, _ string) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productsErr != nil {
		return nil, s.productsErr
	}

	return s.products, nil
}

func (s *memStore) UpdateProductOutputs(_ context.Context, _ *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saveCount++

	return nil
}
