package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kurochkinivan/image_processor/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Coordinator drives all image work for one request: it claims the request,
// fans every (product, image) pair out to workers under a bounded limit,
// collects the outcomes into the products' slot arenas and performs the
// single terminal transition followed by the one-shot notification.
type Coordinator struct {
	log         *slog.Logger
	workerLimit int
	requests    RequestStore
	products    ProductStore
	worker      ImageProcessor
	notifier    Notifier
}

func NewCoordinator(
	log *slog.Logger,
	workerLimit int,
	requests RequestStore,
	products ProductStore,
	worker ImageProcessor,
	notifier Notifier,
) *Coordinator {
	return &Coordinator{
		log:         log,
		workerLimit: workerLimit,
		requests:    requests,
		products:    products,
		worker:      worker,
		notifier:    notifier,
	}
}

// ProcessBatch runs the batch for requestID to completion. Calling it again
// for a request that is already processing or terminal is a no-op: the
// pending->processing claim succeeds for exactly one caller.
func (c *Coordinator) ProcessBatch(ctx context.Context, requestID string) error {
	log := c.log.With(slog.String("request_id", requestID))

	claimed, err := c.requests.ClaimRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to claim request: %w", err)
	}
	if !claimed {
		log.DebugContext(ctx, "request is not pending, skipping")
		return nil
	}

	req, err := c.requests.RequestByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}

	products, err := c.products.ProductsByRequestID(ctx, requestID)
	if err != nil {
		log.ErrorContext(ctx, "failed to load products, failing request", slog.String("err", err.Error()))
		c.finish(ctx, log, req, domain.StatusFailed)
		return nil
	}

	log.InfoContext(ctx, "processing batch", slog.Int("products", len(products)))

	c.processProducts(ctx, log, requestID, products)

	c.finish(ctx, log, req, domain.StatusCompleted)

	return nil
}

// processProducts dispatches every image slot to the worker, at most
// workerLimit in flight. erg.Wait is the join barrier: it returns only after
// every dispatched slot has reported. Per-image failures are recorded in the
// slots and never surface here.
func (c *Coordinator) processProducts(ctx context.Context, log *slog.Logger, requestID string, products []*domain.Product) {
	locks := make([]sync.Mutex, len(products))

	var erg errgroup.Group
	erg.SetLimit(c.workerLimit)

	for ri, product := range products {
		product.InitOutputs()

		if len(product.InputImageURLs) == 0 {
			c.saveOutputs(ctx, log, product)
			continue
		}

		for ii, url := range product.InputImageURLs {
			erg.Go(func() error {
				result := c.worker.Process(ctx, url, imageKey(requestID, product.ID, ii))

				locks[ri].Lock()
				product.Outputs[ii] = result
				resolved := product.Resolved()
				locks[ri].Unlock()

				if resolved {
					c.saveOutputs(ctx, log, product)
				}

				return nil
			})
		}
	}

	_ = erg.Wait()
}

func (c *Coordinator) saveOutputs(ctx context.Context, log *slog.Logger, product *domain.Product) {
	if err := c.products.UpdateProductOutputs(ctx, product); err != nil {
		log.ErrorContext(ctx, "failed to save product outputs",
			slog.Int64("product_id", product.ID),
			slog.String("err", err.Error()),
		)
	}
}

// finish performs the terminal transition and fires the notification. The
// conditional processing->terminal update guarantees completedAt is set at
// most once and the notifier fires at most once per request.
func (c *Coordinator) finish(ctx context.Context, log *slog.Logger, req *domain.ProcessingRequest, status domain.Status) {
	finished, err := c.requests.FinishRequest(ctx, req.RequestID, status, time.Now())
	if err != nil {
		log.ErrorContext(ctx, "failed to finish request", slog.String("err", err.Error()))
		return
	}
	if !finished {
		log.WarnContext(ctx, "request is already terminal, skipping notification")
		return
	}

	log.InfoContext(ctx, "request finished", slog.String("status", string(status)))

	c.notifier.Notify(ctx, req.CallbackURL, req.RequestID, status)
}

func imageKey(requestID string, productID int64, index int) string {
	return fmt.Sprintf("%s/%d_%d.jpg", requestID, productID, index)
}
