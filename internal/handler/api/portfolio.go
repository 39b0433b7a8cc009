package api

import (
	"time"

	"github.com/labstack/echo/v4"

	models "FundLens/internal/domain/models"
	"FundLens/internal/service/metrics"
	"FundLens/internal/usecase"
	xhttp "FundLens/pkg/http"
	xlogger "FundLens/pkg/logger"
)

// PortfolioHandler serves portfolio analysis and saved portfolios.
type PortfolioHandler struct {
	logger    *xlogger.Logger
	portfolio *usecase.PortfolioUseCase
	saved     *usecase.SavedUseCase
}

func NewPortfolioHandler(logger *xlogger.Logger, portfolio *usecase.PortfolioUseCase, saved *usecase.SavedUseCase) *PortfolioHandler {
	metrics.Register()
	return &PortfolioHandler{logger: logger, portfolio: portfolio, saved: saved}
}

func (h *PortfolioHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/portfolio")
	g.POST("/analyze", h.Analyze)
	g.POST("/returns", h.Returns)
	g.POST("/metrics", h.Metrics)
	g.POST("/save", h.Save)
	g.GET("/saved/:user_id", h.ListSaved)
	g.GET("/saved/:user_id/:name", h.GetSaved)
	g.DELETE("/saved/:user_id/:name", h.DeleteSaved)
}

func (h *PortfolioHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "portfolio_analyze"
	defer func() { metrics.AnalyticsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.PortfolioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.portfolio.Analyze(c.Request().Context(), req)
	if err != nil {
		metrics.AnalyticsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("portfolio analyze error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PortfolioHandler) Returns(c echo.Context) error {
	req := &models.PortfolioReturnsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.portfolio.Returns(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("portfolio returns error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PortfolioHandler) Metrics(c echo.Context) error {
	req := &models.PortfolioReturnsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.portfolio.Metrics(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("portfolio metrics error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PortfolioHandler) Save(c echo.Context) error {
	req := &models.SavePortfolioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.saved.SavePortfolio(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("save portfolio error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, res)
}

func (h *PortfolioHandler) ListSaved(c echo.Context) error {
	res, err := h.saved.ListPortfolios(c.Request().Context(), userIDParam(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PortfolioHandler) GetSaved(c echo.Context) error {
	res, err := h.saved.GetPortfolio(c.Request().Context(), userIDParam(c), pathName(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PortfolioHandler) DeleteSaved(c echo.Context) error {
	if err := h.saved.DeletePortfolio(c.Request().Context(), userIDParam(c), pathName(c)); err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.NoContentResponse(c)
}
