package api

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	models "FundLens/internal/domain/models"
	icache "FundLens/internal/service/cache"
	"FundLens/internal/service/metrics"
	"FundLens/internal/service/ratelimit"
	"FundLens/internal/usecase"
	xhttp "FundLens/pkg/http"
	xlogger "FundLens/pkg/logger"
)

// monitorCacheTTL bounds how stale a cached monitor response may get.
const monitorCacheTTL = 60 * time.Second

// RiskHandler serves the risk-monitor endpoints: the classification table,
// return distributions and saved monitor selections.
type RiskHandler struct {
	logger *xlogger.Logger
	risk   *usecase.RiskUseCase
	saved  *usecase.SavedUseCase
	cache  icache.BytesCache
	rl     *ratelimit.Limiter
}

func NewRiskHandler(logger *xlogger.Logger, risk *usecase.RiskUseCase, saved *usecase.SavedUseCase) *RiskHandler {
	metrics.Register()
	return &RiskHandler{logger: logger, risk: risk, saved: saved, rl: ratelimit.New()}
}

// SetCache enables response caching for the monitor endpoint.
func (h *RiskHandler) SetCache(c icache.BytesCache) { h.cache = c }

func (h *RiskHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/risk")
	g.POST("/monitor", h.Monitor)
	g.POST("/monitor/distribution", h.Distribution)
	g.POST("/monitor/save", h.SaveMonitor)
	g.GET("/monitor/saved/:user_id", h.ListSaved)
	g.GET("/monitor/saved/:user_id/:name", h.GetSaved)
	g.DELETE("/monitor/saved/:user_id/:name", h.DeleteSaved)
}

func (h *RiskHandler) Monitor(c echo.Context) error {
	start := time.Now()
	endpoint := "risk_monitor"
	defer func() { metrics.AnalyticsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.RiskMonitorRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":monitor", 10, 5) {
		h.logger.Warn("risk monitor rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.DataResponse(c, 429, "rate limited")
	}

	key := monitorCacheKey(req.FundNames)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(key); err != nil {
			h.logger.Warn("risk monitor cache_get_error", xlogger.Error(err))
		} else if ok {
			metrics.CacheHits.WithLabelValues(endpoint).Inc()
			return xhttp.SuccessResponse(c, json.RawMessage(b))
		}
		metrics.CacheMisses.WithLabelValues(endpoint).Inc()
	}

	res, err := h.risk.Monitor(c.Request().Context(), req.FundNames)
	if err != nil {
		metrics.AnalyticsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("risk monitor error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	if h.cache != nil {
		if b, err := json.Marshal(res); err == nil {
			if err := h.cache.SetBytes(key, b, monitorCacheTTL); err != nil {
				h.logger.Warn("risk monitor cache_set_error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, res)
}

func monitorCacheKey(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return "risk:monitor:" + strings.Join(sorted, "|")
}

func (h *RiskHandler) Distribution(c echo.Context) error {
	start := time.Now()
	endpoint := "risk_distribution"
	defer func() { metrics.AnalyticsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.DistributionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.risk.Distribution(c.Request().Context(), req)
	if err != nil {
		metrics.AnalyticsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("risk distribution error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *RiskHandler) SaveMonitor(c echo.Context) error {
	req := &models.SaveMonitorRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.saved.SaveMonitor(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("save monitor error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, res)
}

func (h *RiskHandler) ListSaved(c echo.Context) error {
	res, err := h.saved.ListMonitors(c.Request().Context(), userIDParam(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *RiskHandler) GetSaved(c echo.Context) error {
	res, err := h.saved.GetMonitor(c.Request().Context(), userIDParam(c), pathName(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *RiskHandler) DeleteSaved(c echo.Context) error {
	if err := h.saved.DeleteMonitor(c.Request().Context(), userIDParam(c), pathName(c)); err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}

// userIDParam decodes the :user_id path parameter, falling back to the
// single shared profile.
func userIDParam(c echo.Context) string {
	raw := c.Param("user_id")
	if raw == "" {
		return "default"
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
