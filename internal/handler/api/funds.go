package api

import (
	"net/url"

	"github.com/labstack/echo/v4"

	models "FundLens/internal/domain/models"
	"FundLens/internal/usecase"
	xhttp "FundLens/pkg/http"
	xlogger "FundLens/pkg/logger"
)

// FundsHandler serves the fund catalog endpoints.
type FundsHandler struct {
	logger *xlogger.Logger
	funds  *usecase.FundsUseCase
}

func NewFundsHandler(logger *xlogger.Logger, funds *usecase.FundsUseCase) *FundsHandler {
	return &FundsHandler{logger: logger, funds: funds}
}

func (h *FundsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/funds")
	g.GET("", h.List)
	g.GET("/categories", h.Categories)
	g.GET("/subcategories", h.Subcategories)
	g.GET("/names", h.Names)
	g.POST("/compare", h.Compare)
	g.GET("/:name", h.Detail)
	g.GET("/:name/returns", h.Returns)
	g.GET("/:name/metrics", h.Metrics)
}

func (h *FundsHandler) List(c echo.Context) error {
	req := &models.FundListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.funds.List(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("funds list error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Categories(c echo.Context) error {
	res, err := h.funds.Categories(c.Request().Context())
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Subcategories(c echo.Context) error {
	res, err := h.funds.Subcategories(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Names(c echo.Context) error {
	req := &models.FundNamesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.funds.Names(c.Request().Context(), req)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Detail(c echo.Context) error {
	res, err := h.funds.Detail(c.Request().Context(), pathName(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Returns(c echo.Context) error {
	res, err := h.funds.Returns(c.Request().Context(), pathName(c), periodMonthsParam(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Metrics(c echo.Context) error {
	res, err := h.funds.Metrics(c.Request().Context(), pathName(c), periodMonthsParam(c))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *FundsHandler) Compare(c echo.Context) error {
	req := &models.FundCompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.funds.Compare(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("funds compare error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// pathName decodes the :name path parameter; fund names carry spaces and
// slashes once URL-encoded.
func pathName(c echo.Context) string {
	raw := c.Param("name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// periodMonthsParam reads the optional period_months query parameter.
func periodMonthsParam(c echo.Context) *int {
	n := xhttp.ParseIntDefault(c.QueryParam("period_months"), 0)
	if n <= 0 {
		return nil
	}
	return &n
}
