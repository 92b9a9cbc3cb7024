package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher is the task queue in front of the coordinator. Uploads enqueue
// request IDs; a periodic database scan re-enqueues pending requests so work
// interrupted by a restart is picked up again. Duplicate enqueues are
// harmless: the coordinator's claim admits exactly one run per request.
type Dispatcher struct {
	log          *slog.Logger
	scanInterval time.Duration
	queue        chan string
	pending      PendingRequestsProvider
	processor    BatchProcessor
}

func NewDispatcher(
	log *slog.Logger,
	scanInterval time.Duration,
	queueSize int,
	pending PendingRequestsProvider,
	processor BatchProcessor,
) *Dispatcher {
	return &Dispatcher{
		log:          log,
		scanInterval: scanInterval,
		queue:        make(chan string, queueSize),
		pending:      pending,
		processor:    processor,
	}
}

// Enqueue hands a request to the dispatcher without blocking. If the queue is
// full the request stays pending in the database and the next scan picks it up.
func (d *Dispatcher) Enqueue(requestID string) {
	select {
	case d.queue <- requestID:
	default:
		d.log.Warn("dispatch queue is full, request deferred to next scan",
			slog.String("request_id", requestID),
		)
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case requestID := <-d.queue:
			d.process(ctx, requestID)

		case <-ticker.C:
			if err := d.scanPending(ctx); err != nil {
				d.log.ErrorContext(ctx, "failed to scan pending requests", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, requestID string) {
	d.log.DebugContext(ctx, "dispatching batch", slog.String("request_id", requestID))

	if err := d.processor.ProcessBatch(ctx, requestID); err != nil {
		d.log.ErrorContext(ctx, "failed to process batch",
			slog.String("request_id", requestID),
			slog.String("err", err.Error()),
		)
	}
}

func (d *Dispatcher) scanPending(ctx context.Context) error {
	requestIDs, err := d.pending.PendingRequests(ctx)
	if err != nil {
		return err
	}

	for _, requestID := range requestIDs {
		d.Enqueue(requestID)
	}

	return nil
}
