package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"FundLens/internal/analytics"
	"FundLens/internal/dataset"
	"FundLens/internal/domain/models"
	xhttp "FundLens/pkg/http"
)

// FundsUseCase serves the fund catalog: listing, filtering, lookups and
// per-fund time series.
type FundsUseCase struct {
	store *dataset.Store
}

func NewFundsUseCase(store *dataset.Store) *FundsUseCase {
	return &FundsUseCase{store: store}
}

// sortAccessors maps sort_by keys to catalog fields. Funds missing the
// sorted field always land at the end, in either direction.
var sortAccessors = map[string]func(*models.Fund) *float64{
	"aum":            func(f *models.Fund) *float64 { return f.AUM },
	"return_12m":     func(f *models.Fund) *float64 { return f.Return12M },
	"return_24m":     func(f *models.Fund) *float64 { return f.Return24M },
	"return_36m":     func(f *models.Fund) *float64 { return f.Return36M },
	"volatility_12m": func(f *models.Fund) *float64 { return f.Volatility12M },
	"sharpe_12m":     func(f *models.Fund) *float64 { return f.Sharpe12M },
	"max_drawdown":   func(f *models.Fund) *float64 { return f.MaxDrawdown },
	"shareholders": func(f *models.Fund) *float64 {
		if f.Shareholders == nil {
			return nil
		}
		v := float64(*f.Shareholders)
		return &v
	},
}

// List applies filters, sorting and pagination over the catalog.
func (uc *FundsUseCase) List(ctx context.Context, req *models.FundListRequest) (*models.FundPage, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}

	filtered := make([]*models.Fund, 0, len(snap.Funds))
	needle := strings.ToLower(req.Search)
	for i := range snap.Funds {
		f := &snap.Funds[i]
		if req.Category != "" && f.Category != req.Category {
			continue
		}
		if req.Subcategory != "" && f.Subcategory != req.Subcategory {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(f.Name), needle) {
			continue
		}
		if req.MinSharpe != nil && (f.Sharpe12M == nil || *f.Sharpe12M < *req.MinSharpe) {
			continue
		}
		if req.MaxMDD != nil && (f.MaxDrawdown == nil || *f.MaxDrawdown < *req.MaxMDD) {
			continue
		}
		if req.MinAUM != nil && (f.AUM == nil || *f.AUM < *req.MinAUM) {
			continue
		}
		if req.MaxLiquidityDays != nil && (f.LiquidityDays == nil || *f.LiquidityDays > *req.MaxLiquidityDays) {
			continue
		}
		filtered = append(filtered, f)
	}

	if req.SortBy != "" {
		accessor, ok := sortAccessors[req.SortBy]
		if !ok {
			return nil, xhttp.BadRequestErrorf("unknown sort field %q", req.SortBy)
		}
		desc := req.Descending()
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := accessor(filtered[i]), accessor(filtered[j])
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if desc {
				return *a > *b
			}
			return *a < *b
		})
	}

	total := len(filtered)
	totalPages := (total + req.PageSize - 1) / req.PageSize
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	items := make([]models.FundListItem, 0, end-start)
	for _, f := range filtered[start:end] {
		items = append(items, f.ListItem())
	}
	return &models.FundPage{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Categories lists distinct fund categories.
func (uc *FundsUseCase) Categories(ctx context.Context) ([]string, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	return snap.Categories(), nil
}

// Subcategories lists distinct subcategories, optionally within a category.
func (uc *FundsUseCase) Subcategories(ctx context.Context, category string) ([]string, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	return snap.Subcategories(category), nil
}

// Names searches fund names for autocomplete.
func (uc *FundsUseCase) Names(ctx context.Context, req *models.FundNamesRequest) ([]string, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	return snap.Names(req.Search, req.Limit), nil
}

// FundDetail is the full catalog row plus current flow metrics.
type FundDetail struct {
	models.Fund
	Flows *models.FlowMetrics `json:"flows,omitempty"`
}

// Detail fetches one fund with its flow metrics.
func (uc *FundsUseCase) Detail(ctx context.Context, name string) (*FundDetail, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	f, ok := snap.Fund(name)
	if !ok {
		return nil, xhttp.NotFoundErrorf("fund %q not found", name)
	}
	return &FundDetail{
		Fund:  *f,
		Flows: dataset.FlowMetrics(snap.Details[f.CNPJStandard]),
	}, nil
}

// Returns fetches a fund's daily return series with cumulative overlay,
// optionally restricted to the trailing period in months.
func (uc *FundsUseCase) Returns(ctx context.Context, name string, periodMonths *int) (*models.FundReturns, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	if _, ok := snap.Fund(name); !ok {
		return nil, xhttp.NotFoundErrorf("fund %q not found", name)
	}
	series, ok := snap.ReturnsByFundName(name)
	if !ok || len(series) == 0 {
		return nil, xhttp.NotFoundErrorf("no return series for fund %q", name)
	}
	series = series.SincePeriodMonths(periodMonths)
	values := series.Values()
	return &models.FundReturns{
		FundName:          name,
		Dates:             series.DateStrings(),
		Returns:           values,
		CumulativeReturns: analytics.CumulativeReturns(values),
	}, nil
}

// minMetricsObservations is the minimum series length for which the
// computed metrics are meaningful; shorter series report as not found.
const minMetricsObservations = 10

// Metrics computes performance metrics from a fund's daily return series,
// optionally restricted to the trailing period in months.
func (uc *FundsUseCase) Metrics(ctx context.Context, name string, periodMonths *int) (*models.FundMetricsResult, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	if _, ok := snap.Fund(name); !ok {
		return nil, xhttp.NotFoundErrorf("fund %q not found", name)
	}
	series, ok := snap.ReturnsByFundName(name)
	if ok {
		series = series.SincePeriodMonths(periodMonths)
	}
	if len(series) < minMetricsObservations {
		return nil, xhttp.NotFoundErrorf("insufficient return data for fund %q", name)
	}

	xs := series.Values()
	res := &models.FundMetricsResult{
		FundName:         name,
		Observations:     len(xs),
		TotalReturn:      analytics.TotalReturn(xs),
		AnnualizedReturn: analytics.AnnualizedReturn(xs, analytics.TradingDaysPerYear),
		Volatility:       analytics.Volatility(xs, analytics.TradingDaysPerYear),
		SharpeRatio:      analytics.SharpeRatio(xs, 0, analytics.TradingDaysPerYear),
		MaxDrawdown:      analytics.MaxDrawdown(xs),
		VaR95:            analytics.VaR(xs, 0.95),
		CVaR95:           analytics.CVaR(xs, 0.95),
	}
	res.OmegaRatio = finite(analytics.OmegaRatio(xs, 0))
	res.SortinoRatio = finite(analytics.SortinoRatio(xs, 0, analytics.TradingDaysPerYear))
	res.CalmarRatio = finite(analytics.CalmarRatio(xs, analytics.TradingDaysPerYear))
	return res, nil
}

// finite returns a pointer to v, or nil when v is NaN or infinite.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// defaultCompareMetrics is the column set when the request names none.
var defaultCompareMetrics = []string{"return_12m", "volatility_12m", "sharpe_12m", "max_drawdown"}

var compareAccessors = map[string]func(*models.Fund) interface{}{
	"category":       func(f *models.Fund) interface{} { return f.Category },
	"subcategory":    func(f *models.Fund) interface{} { return f.Subcategory },
	"aum":            func(f *models.Fund) interface{} { return f.AUM },
	"shareholders":   func(f *models.Fund) interface{} { return f.Shareholders },
	"liquidity":      func(f *models.Fund) interface{} { return f.Liquidity },
	"return_12m":     func(f *models.Fund) interface{} { return f.Return12M },
	"return_24m":     func(f *models.Fund) interface{} { return f.Return24M },
	"return_36m":     func(f *models.Fund) interface{} { return f.Return36M },
	"volatility_12m": func(f *models.Fund) interface{} { return f.Volatility12M },
	"sharpe_12m":     func(f *models.Fund) interface{} { return f.Sharpe12M },
	"max_drawdown":   func(f *models.Fund) interface{} { return f.MaxDrawdown },
	"excess_12m":     func(f *models.Fund) interface{} { return f.Excess12M },
	"excess_24m":     func(f *models.Fund) interface{} { return f.Excess24M },
	"best_month":     func(f *models.Fund) interface{} { return f.BestMonth },
	"worst_month":    func(f *models.Fund) interface{} { return f.WorstMonth },
}

// Compare builds a side-by-side metric table for the named funds.
func (uc *FundsUseCase) Compare(ctx context.Context, req *models.FundCompareRequest) ([]map[string]interface{}, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	metrics := req.Metrics
	if len(metrics) == 0 {
		metrics = defaultCompareMetrics
	}
	for _, m := range metrics {
		if _, ok := compareAccessors[m]; !ok {
			return nil, xhttp.BadRequestErrorf("unknown metric %q", m)
		}
	}

	rows := make([]map[string]interface{}, 0, len(req.FundNames))
	for _, name := range req.FundNames {
		f, ok := snap.Fund(name)
		if !ok {
			return nil, xhttp.NotFoundErrorf("fund %q not found", name)
		}
		row := map[string]interface{}{"name": f.Name}
		for _, m := range metrics {
			row[m] = compareAccessors[m](f)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
