package di

import (
	"fmt"

	"gorm.io/gorm"

	"FundLens/internal/dataset"
	"FundLens/internal/handler/api"
	internalrepo "FundLens/internal/repository"
	icache "FundLens/internal/service/cache"
	"FundLens/internal/usecase"
	"FundLens/pkg/config"
	xhttp "FundLens/pkg/http"
	applogger "FundLens/pkg/logger"
	pkgmetrics "FundLens/pkg/metrics"
	"FundLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	l, err := applogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetricsRecorder creates a Prometheus metrics recorder.
func ProvideMetricsRecorder() *pkgmetrics.Recorder {
	return pkgmetrics.New()
}

// ProvideStore creates the shared snapshot store.
func ProvideStore() *dataset.Store {
	return dataset.NewStore()
}

// ProvideLoader creates the dataset loader with metrics wired in.
func ProvideLoader(cfg *config.Config, log *applogger.Logger, rec *pkgmetrics.Recorder) *dataset.Loader {
	l := dataset.NewLoader(dataset.Paths{
		FundMetrics: cfg.Data.FundMetricsPath,
		FundDetails: cfg.Data.FundDetailsPath,
		Benchmarks:  cfg.Data.BenchmarksPath,
	}, log)
	l.SetRecorder(rec)
	return l
}

// ProvideDB opens the saved-config SQLite database.
func ProvideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := internalrepo.OpenSQLite(cfg.Database.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: %w", err)
	}
	return db, nil
}

// ProvideSavedStore creates the saved-config repository.
func ProvideSavedStore(db *gorm.DB, log *applogger.Logger) *internalrepo.SavedStore {
	s := internalrepo.NewSavedStore(db)
	s.SetLogger(log)
	return s
}

// ProvideRiskUseCase creates the risk usecase with logging wired in.
func ProvideRiskUseCase(store *dataset.Store, log *applogger.Logger) *usecase.RiskUseCase {
	uc := usecase.NewRiskUseCase(store)
	uc.SetLogger(log)
	return uc
}

// ProvideRiskHandler creates the risk handler with optional Redis caching.
func ProvideRiskHandler(cfg *config.Config, log *applogger.Logger, risk *usecase.RiskUseCase, saved *usecase.SavedUseCase) *api.RiskHandler {
	h := api.NewRiskHandler(log, risk, saved)
	if cfg.Cache.Redis.Enabled {
		h.SetCache(icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}))
	} else {
		h.SetCache(icache.NewTTLCache())
	}
	return h
}

// ProvideRouter bundles the API handlers.
func ProvideRouter(
	funds *api.FundsHandler,
	risk *api.RiskHandler,
	portfolio *api.PortfolioHandler,
	benchmarks *api.BenchmarksHandler,
	system *api.SystemHandler,
) xhttp.Handler {
	return api.NewRouter(funds, risk, portfolio, benchmarks, system)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	store *dataset.Store,
	loader *dataset.Loader,
	db *gorm.DB,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, log, store, loader, db, handler)
}
