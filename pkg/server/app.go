package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"SignalDesk/internal/domain/repository"
	"SignalDesk/internal/handler/stream"
	"SignalDesk/internal/usecase"
	"SignalDesk/pkg/config"
	xhttp "SignalDesk/pkg/http"
	"SignalDesk/pkg/logger"
)

// App encapsulates the entire application lifecycle: scheduled derivation
// cycles, the HTTP/WebSocket server and graceful shutdown.
type App struct {
	cfg        *config.Config
	pipeline   *usecase.Pipeline
	handler    xhttp.Handler
	hub        *stream.Hub
	publisher  repository.Publisher
	logger     *logger.Logger
	httpServer *xhttp.Server
	scheduler  *cron.Cron
}

// New creates an App and validates the refresh schedules up front.
func New(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	handler xhttp.Handler,
	hub *stream.Hub,
	publisher repository.Publisher,
	log *logger.Logger,
) (*App, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(cfg.Pipeline.NewsSchedule); err != nil {
		return nil, fmt.Errorf("news schedule: %w", err)
	}
	if _, err := parser.Parse(cfg.Pipeline.PriceSchedule); err != nil {
		return nil, fmt.Errorf("price schedule: %w", err)
	}

	return &App{
		cfg:       cfg,
		pipeline:  pipeline,
		handler:   handler,
		hub:       hub,
		publisher: publisher,
		logger:    log,
		scheduler: cron.New(),
	}, nil
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// prime both halves of the snapshot before serving traffic
	a.pipeline.RefreshPrices(ctx)
	a.pipeline.RefreshNews(ctx)

	if _, err := a.scheduler.AddFunc(a.cfg.Pipeline.NewsSchedule, func() {
		a.pipeline.RefreshNews(ctx)
	}); err != nil {
		return fmt.Errorf("schedule news refresh: %w", err)
	}
	if _, err := a.scheduler.AddFunc(a.cfg.Pipeline.PriceSchedule, func() {
		a.pipeline.RefreshPrices(ctx)
	}); err != nil {
		return fmt.Errorf("schedule price refresh: %w", err)
	}
	a.scheduler.Start()
	a.logger.Info("scheduler started",
		logger.String("news", a.cfg.Pipeline.NewsSchedule),
		logger.String("prices", a.cfg.Pipeline.PriceSchedule))

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
	)
	if err := a.httpServer.Start(); err != nil {
		return fmt.Errorf("http server start: %w", err)
	}
	a.logger.Info("http server started", logger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown stops the scheduler first so no new cycles start, then drains the
// outbound surfaces.
func (a *App) shutdown(ctx context.Context) error {
	stopCtx := a.scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", logger.Error(err))
	}

	if a.hub != nil {
		a.hub.Close()
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("publisher close error", logger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
