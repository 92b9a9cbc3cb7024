package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/image_processor/internal/domain"
)

// Worker processes a single image: fetch over the network, re-encode, persist.
// It owns no shared state; the outcome is returned to the coordinator, which
// is the sole writer of request and product records.
type Worker struct {
	log        *slog.Logger
	client     *http.Client
	compressor ImageCompressor
	store      ImageStore
}

func NewWorker(log *slog.Logger, fetchTimeout time.Duration, compressor ImageCompressor, store ImageStore) *Worker {
	return &Worker{
		log:        log,
		client:     &http.Client{Timeout: fetchTimeout},
		compressor: compressor,
		store:      store,
	}
}

func (w *Worker) Process(ctx context.Context, url, key string) domain.ImageResult {
	log := w.log.With(slog.String("url", url), slog.String("key", key))

	data, err := w.fetch(ctx, url)
	if err != nil {
		log.DebugContext(ctx, "failed to fetch image", slog.String("err", err.Error()))
		return failure(domain.ErrCodeNetwork, err)
	}

	compressed, err := w.compressor.Compress(data)
	if err != nil {
		log.DebugContext(ctx, "failed to compress image", slog.String("err", err.Error()))
		return failure(domain.ErrCodeDecode, err)
	}

	outputURL, err := w.store.Save(ctx, key, compressed)
	if err != nil {
		log.DebugContext(ctx, "failed to store image", slog.String("err", err.Error()))
		return failure(domain.ErrCodeWrite, err)
	}

	return domain.ImageResult{OutputURL: outputURL}
}

func (w *Worker) fetch(ctx context.Context, url string) (_ []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	defer func() { err = errors.Join(err, resp.Body.Close()) }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code %d for %q", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	return data, nil
}

func failure(code domain.ErrorCode, err error) domain.ImageResult {
	return domain.ImageResult{
		Code:  code,
		Error: err.Error(),
	}
}
