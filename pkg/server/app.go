package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gorm.io/gorm"

	"FundLens/internal/dataset"
	"FundLens/internal/service/metrics"
	"FundLens/pkg/config"
	xhttp "FundLens/pkg/http"
	applogger "FundLens/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	store      *dataset.Store
	loader     *dataset.Loader
	db         *gorm.DB
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	store *dataset.Store,
	loader *dataset.Loader,
	db *gorm.DB,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		loader:  loader,
		db:      db,
		handler: handler,
	}
}

// Run loads the dataset, starts the HTTP server and blocks until
// interrupted.
func (a *App) Run() error {
	snap, err := a.loader.Load()
	if err != nil {
		// Serve anyway: endpoints answer 503 until a reload succeeds.
		a.log.Error("initial data load failed", applogger.Error(err))
	} else {
		a.store.Swap(snap)
		metrics.Register()
		metrics.FundsLoaded.Set(float64(len(snap.Funds)))
		a.log.Info("data loaded",
			applogger.Int("funds", len(snap.Funds)),
			applogger.Int("benchmarks", len(snap.Benchmarks)),
		)
	}

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(a.cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
	)
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server and closes the database.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.log.Warn("sqlite close error", applogger.Error(err))
			}
		}
	}
	a.log.Info("shutdown complete")
	return nil
}
