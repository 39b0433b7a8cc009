package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"FundLens/internal/domain/models"
	"FundLens/internal/usecase"
)

// Funds lists catalog rows for the given filters, sort and page.
func (a *API) Funds(ctx context.Context, req *models.FundListRequest) (*models.FundPage, error) {
	q := map[string][]string{}
	setStr(q, "category", req.Category)
	setStr(q, "subcategory", req.Subcategory)
	setStr(q, "search", req.Search)
	setFloat(q, "min_sharpe", req.MinSharpe)
	setFloat(q, "max_mdd", req.MaxMDD)
	setFloat(q, "min_aum", req.MinAUM)
	if req.MaxLiquidityDays != nil {
		q["max_liquidity_days"] = []string{strconv.Itoa(*req.MaxLiquidityDays)}
	}
	if req.Page > 0 {
		q["page"] = []string{strconv.Itoa(req.Page)}
	}
	if req.PageSize > 0 {
		q["page_size"] = []string{strconv.Itoa(req.PageSize)}
	}
	setStr(q, "sort_by", req.SortBy)
	if req.SortDesc != nil {
		q["sort_desc"] = []string{strconv.FormatBool(*req.SortDesc)}
	}

	var page models.FundPage
	if err := a.Get(ctx, "/api/funds", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Categories lists distinct fund categories.
func (a *API) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := a.Get(ctx, "/api/funds/categories", nil, &out)
	return out, err
}

// Subcategories lists subcategories, optionally within one category.
func (a *API) Subcategories(ctx context.Context, category string) ([]string, error) {
	q := map[string][]string{}
	setStr(q, "category", category)
	var out []string
	err := a.Get(ctx, "/api/funds/subcategories", q, &out)
	return out, err
}

// FundNames searches fund names for autocomplete.
func (a *API) FundNames(ctx context.Context, search string, limit int) ([]string, error) {
	q := map[string][]string{}
	setStr(q, "search", search)
	if limit > 0 {
		q["limit"] = []string{strconv.Itoa(limit)}
	}
	var out []string
	err := a.Get(ctx, "/api/funds/names", q, &out)
	return out, err
}

// FundDetail fetches one fund with its flow metrics.
func (a *API) FundDetail(ctx context.Context, name string) (*usecase.FundDetail, error) {
	var out usecase.FundDetail
	err := a.Get(ctx, "/api/funds/"+url.PathEscape(name), nil, &out)
	return &out, err
}

// FundReturns fetches a fund's return series, optionally trimmed to the
// trailing period in months.
func (a *API) FundReturns(ctx context.Context, name string, periodMonths *int) (*models.FundReturns, error) {
	var out models.FundReturns
	err := a.Get(ctx, "/api/funds/"+url.PathEscape(name)+"/returns", periodQuery(periodMonths), &out)
	return &out, err
}

// FundMetrics fetches metrics computed from a fund's return series,
// optionally trimmed to the trailing period in months.
func (a *API) FundMetrics(ctx context.Context, name string, periodMonths *int) (*models.FundMetricsResult, error) {
	var out models.FundMetricsResult
	err := a.Get(ctx, "/api/funds/"+url.PathEscape(name)+"/metrics", periodQuery(periodMonths), &out)
	return &out, err
}

// CompareFunds builds a side-by-side metric table.
func (a *API) CompareFunds(ctx context.Context, req *models.FundCompareRequest) ([]map[string]interface{}, error) {
	var out []map[string]interface{}
	err := a.Post(ctx, "/api/funds/compare", req, &out)
	return out, err
}

// RiskMonitor classifies the given funds.
func (a *API) RiskMonitor(ctx context.Context, fundNames []string) (*usecase.RiskMonitorResult, error) {
	var out usecase.RiskMonitorResult
	err := a.Post(ctx, "/api/risk/monitor", &models.RiskMonitorRequest{FundNames: fundNames}, &out)
	return &out, err
}

// Distribution fetches return-distribution data for one fund.
func (a *API) Distribution(ctx context.Context, req *models.DistributionRequest) (*models.DistributionData, error) {
	var out models.DistributionData
	err := a.Post(ctx, "/api/risk/monitor/distribution", req, &out)
	return &out, err
}

// AnalyzePortfolio runs the full portfolio analysis.
func (a *API) AnalyzePortfolio(ctx context.Context, req *models.PortfolioRequest) (*models.PortfolioAnalysis, error) {
	var out models.PortfolioAnalysis
	err := a.Post(ctx, "/api/portfolio/analyze", req, &out)
	return &out, err
}

// PortfolioReturns fetches the blended return series.
func (a *API) PortfolioReturns(ctx context.Context, req *models.PortfolioReturnsRequest) (*models.PortfolioReturnsSeries, error) {
	var out models.PortfolioReturnsSeries
	err := a.Post(ctx, "/api/portfolio/returns", req, &out)
	return &out, err
}

// PortfolioMetrics fetches summary metrics for an allocation set.
func (a *API) PortfolioMetrics(ctx context.Context, req *models.PortfolioReturnsRequest) (*models.PortfolioMetricsResult, error) {
	var out models.PortfolioMetricsResult
	err := a.Post(ctx, "/api/portfolio/metrics", req, &out)
	return &out, err
}

// Benchmarks lists available benchmark names.
func (a *API) Benchmarks(ctx context.Context) ([]string, error) {
	var out []string
	err := a.Get(ctx, "/api/benchmarks", nil, &out)
	return out, err
}

// Benchmark fetches one benchmark series.
func (a *API) Benchmark(ctx context.Context, name string, periodMonths *int) (*models.BenchmarkSeries, error) {
	var out models.BenchmarkSeries
	err := a.Get(ctx, "/api/benchmarks/"+url.PathEscape(name), periodQuery(periodMonths), &out)
	return &out, err
}

// CompareBenchmarks fetches several benchmark series over a common period.
func (a *API) CompareBenchmarks(ctx context.Context, req *models.BenchmarkCompareRequest) ([]models.BenchmarkSeries, error) {
	var out []models.BenchmarkSeries
	err := a.Post(ctx, "/api/benchmarks/compare", req, &out)
	return out, err
}

// SaveMonitor persists a named monitor fund selection.
func (a *API) SaveMonitor(ctx context.Context, req *models.SaveMonitorRequest) (*models.SavedMonitor, error) {
	var out models.SavedMonitor
	err := a.Post(ctx, "/api/risk/monitor/save", req, &out)
	return &out, err
}

// SavedMonitors lists a user's saved monitors.
func (a *API) SavedMonitors(ctx context.Context, userID string) ([]models.SavedMonitor, error) {
	var out []models.SavedMonitor
	err := a.Get(ctx, savedMonitorPath(userID, ""), nil, &out)
	return out, err
}

// SavedMonitor fetches one saved monitor by name.
func (a *API) SavedMonitor(ctx context.Context, userID, name string) (*models.SavedMonitor, error) {
	var out models.SavedMonitor
	err := a.Get(ctx, savedMonitorPath(userID, name), nil, &out)
	return &out, err
}

// DeleteMonitor removes a saved monitor.
func (a *API) DeleteMonitor(ctx context.Context, userID, name string) error {
	return a.Delete(ctx, savedMonitorPath(userID, name), nil)
}

// SavePortfolio persists a named allocation set.
func (a *API) SavePortfolio(ctx context.Context, req *models.SavePortfolioRequest) (*models.SavedPortfolio, error) {
	var out models.SavedPortfolio
	err := a.Post(ctx, "/api/portfolio/save", req, &out)
	return &out, err
}

// SavedPortfolios lists a user's saved portfolios.
func (a *API) SavedPortfolios(ctx context.Context, userID string) ([]models.SavedPortfolio, error) {
	var out []models.SavedPortfolio
	err := a.Get(ctx, savedPortfolioPath(userID, ""), nil, &out)
	return out, err
}

// SavedPortfolio fetches one saved portfolio by name.
func (a *API) SavedPortfolio(ctx context.Context, userID, name string) (*models.SavedPortfolio, error) {
	var out models.SavedPortfolio
	err := a.Get(ctx, savedPortfolioPath(userID, name), nil, &out)
	return &out, err
}

// DeletePortfolio removes a saved portfolio.
func (a *API) DeletePortfolio(ctx context.Context, userID, name string) error {
	return a.Delete(ctx, savedPortfolioPath(userID, name), nil)
}

// savedMonitorPath builds the saved-monitor collection or item path.
func savedMonitorPath(userID, name string) string {
	p := "/api/risk/monitor/saved/" + url.PathEscape(userID)
	if name != "" {
		p += "/" + url.PathEscape(name)
	}
	return p
}

// savedPortfolioPath builds the saved-portfolio collection or item path.
func savedPortfolioPath(userID, name string) string {
	p := "/api/portfolio/saved/" + url.PathEscape(userID)
	if name != "" {
		p += "/" + url.PathEscape(name)
	}
	return p
}

func setStr(q map[string][]string, key, v string) {
	if v != "" {
		q[key] = []string{v}
	}
}

func setFloat(q map[string][]string, key string, v *float64) {
	if v != nil {
		q[key] = []string{fmt.Sprintf("%g", *v)}
	}
}

func periodQuery(periodMonths *int) map[string][]string {
	if periodMonths == nil {
		return nil
	}
	return map[string][]string{"period_months": {strconv.Itoa(*periodMonths)}}
}
