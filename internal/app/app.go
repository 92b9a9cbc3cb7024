package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/image_processor/internal/config"
	v1 "github.com/kurochkinivan/image_processor/internal/controller/http/v1"
	"github.com/kurochkinivan/image_processor/internal/infrastructure/imagestore"
	"github.com/kurochkinivan/image_processor/internal/infrastructure/processor"
	"github.com/kurochkinivan/image_processor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/image_processor/internal/pipeline"
	"github.com/kurochkinivan/image_processor/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("processed_dir", a.cfg.App.ProcessedDirectory),
		slog.String("output_dir", a.cfg.App.OutputDirectory),
		slog.Int("worker_limit", a.cfg.App.WorkerLimit),
		slog.Duration("scan_interval", a.cfg.App.ScanInterval),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	requestsRepository := postgresql.NewRequestsRepository(pool)
	productsRepository := postgresql.NewProductsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if err := requestsRepository.ResetProcessingRequests(ctx); err != nil {
		return fmt.Errorf("failed to reset processing requests: %w", err)
	}

	return a.startPipeline(ctx, requestsRepository, productsRepository, txManager)
}

func (a *App) startPipeline(
	ctx context.Context,
	requestsRepo *postgresql.RequestsRepository,
	productsRepo *postgresql.ProductsRepository,
	txManager *postgresql.TxManager,
) error {
	worker := pipeline.NewWorker(
		a.log,
		a.cfg.FetchTimeout,
		processor.New(a.cfg.JPEGQuality),
		imagestore.New(a.cfg.ProcessedDirectory),
	)
	notifier := pipeline.NewWebhookNotifier(a.log, a.cfg.NotifyTimeout, a.cfg.NotifyAttempts)
	coordinator := pipeline.NewCoordinator(
		a.log,
		a.cfg.WorkerLimit,
		requestsRepo,
		productsRepo,
		worker,
		notifier,
	)
	dispatcher := pipeline.NewDispatcher(
		a.log,
		a.cfg.ScanInterval,
		a.cfg.QueueSize,
		requestsRepo,
		coordinator,
	)
	aggregator := pipeline.NewAggregator(requestsRepo, productsRepo)

	handler := v1.NewHandler(
		requestsRepo,
		productsRepo,
		txManager,
		dispatcher,
		aggregator,
		report_generator.New(),
		a.cfg.OutputDirectory,
	)
	server := v1.NewServer(a.cfg.HTTP, a.cfg.ProcessedDirectory, handler)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "dispatcher started")
		return dispatcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
