package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"FundLens/internal/dataset"
	"FundLens/internal/service/metrics"
	xhttp "FundLens/pkg/http"
	xlogger "FundLens/pkg/logger"
)

// SystemHandler serves the service root, health check and data reload.
type SystemHandler struct {
	logger *xlogger.Logger
	store  *dataset.Store
	loader *dataset.Loader
}

func NewSystemHandler(logger *xlogger.Logger, store *dataset.Store, loader *dataset.Loader) *SystemHandler {
	metrics.Register()
	return &SystemHandler{logger: logger, store: store, loader: loader}
}

func (h *SystemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/reload-data", h.Reload)
}

func (h *SystemHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"service": "fundlens-api",
		"docs":    "/api",
	})
}

func (h *SystemHandler) Health(c echo.Context) error {
	body := map[string]interface{}{
		"status":      "ok",
		"data_loaded": h.store.Loaded(),
	}
	if snap := h.store.Snapshot(); snap != nil {
		body["funds"] = len(snap.Funds)
		body["benchmarks"] = len(snap.Benchmarks)
		body["loaded_at"] = snap.LoadedAt.UTC().Format(time.RFC3339)
	}
	return xhttp.SuccessResponse(c, body)
}

// Reload rebuilds the snapshot from the data files and swaps it in. Readers
// keep the old snapshot until the swap lands.
func (h *SystemHandler) Reload(c echo.Context) error {
	start := time.Now()
	snap, err := h.loader.Load()
	if err != nil {
		h.logger.Error("data reload failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("data reload failed").WithError(err))
	}
	h.store.Swap(snap)
	metrics.FundsLoaded.Set(float64(len(snap.Funds)))
	h.logger.Info("data reloaded",
		xlogger.Int("funds", len(snap.Funds)),
		xlogger.Duration("took", time.Since(start)),
	)
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"funds":     len(snap.Funds),
		"loaded_at": snap.LoadedAt.UTC().Format(time.RFC3339),
	})
}
