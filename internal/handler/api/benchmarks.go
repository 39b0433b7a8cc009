package api

import (
	"github.com/labstack/echo/v4"

	models "FundLens/internal/domain/models"
	"FundLens/internal/usecase"
	xhttp "FundLens/pkg/http"
	xlogger "FundLens/pkg/logger"
)

// BenchmarksHandler serves the benchmark index endpoints.
type BenchmarksHandler struct {
	logger     *xlogger.Logger
	benchmarks *usecase.BenchmarksUseCase
}

func NewBenchmarksHandler(logger *xlogger.Logger, benchmarks *usecase.BenchmarksUseCase) *BenchmarksHandler {
	return &BenchmarksHandler{logger: logger, benchmarks: benchmarks}
}

func (h *BenchmarksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/benchmarks")
	g.GET("", h.List)
	g.POST("/compare", h.Compare)
	g.GET("/:name", h.Get)
}

func (h *BenchmarksHandler) List(c echo.Context) error {
	res, err := h.benchmarks.List(c.Request().Context())
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *BenchmarksHandler) Get(c echo.Context) error {
	res, err := h.benchmarks.Get(c.Request().Context(), pathName(c), periodMonthsParam(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *BenchmarksHandler) Compare(c echo.Context) error {
	req := &models.BenchmarkCompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.benchmarks.Compare(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("benchmarks compare error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
