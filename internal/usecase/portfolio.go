package usecase

import (
	"context"
	"math"
	"sort"

	"FundLens/internal/analytics"
	"FundLens/internal/dataset"
	"FundLens/internal/domain/models"
	xhttp "FundLens/pkg/http"
)

// defaultBenchmark overlays the analysis when the request names none; the
// overlay is simply omitted when the series is not loaded.
const defaultBenchmark = "CDI"

// PortfolioUseCase analyzes fund allocations: combined return series,
// performance metrics and composition breakdowns.
type PortfolioUseCase struct {
	store *dataset.Store
}

func NewPortfolioUseCase(store *dataset.Store) *PortfolioUseCase {
	return &PortfolioUseCase{store: store}
}

// resolved is an allocation joined against the catalog and return series.
type resolved struct {
	funds   []*models.Fund
	weights map[string]float64 // normalized to sum 1
	returns map[string]analytics.Series
}

func (uc *PortfolioUseCase) resolve(snap *dataset.Snapshot, allocations map[string]float64, periodMonths *int) (*resolved, error) {
	if len(allocations) == 0 {
		return nil, xhttp.BadRequestError("allocations required")
	}
	total := 0.0
	for _, w := range allocations {
		if w < 0 {
			return nil, xhttp.BadRequestError("negative weights not allowed")
		}
		total += w
	}
	if total == 0 {
		return nil, xhttp.BadRequestError("total weight must be positive")
	}

	r := &resolved{
		weights: make(map[string]float64, len(allocations)),
		returns: make(map[string]analytics.Series, len(allocations)),
	}
	names := make([]string, 0, len(allocations))
	for name := range allocations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := snap.Fund(name)
		if !ok {
			return nil, xhttp.NotFoundErrorf("fund %q not found", name)
		}
		series, ok := snap.ReturnsByFundName(name)
		if !ok || len(series) == 0 {
			return nil, xhttp.NotFoundErrorf("no return series for fund %q", name)
		}
		r.funds = append(r.funds, f)
		r.weights[name] = allocations[name] / total
		r.returns[name] = series.SincePeriodMonths(periodMonths)
	}
	return r, nil
}

func allocationsMap(allocs []models.PortfolioAllocation) map[string]float64 {
	m := make(map[string]float64, len(allocs))
	for _, a := range allocs {
		m[a.FundName] += a.Weight
	}
	return m
}

// Analyze computes the full portfolio picture: metrics, the combined series
// with an optional benchmark overlay, and composition breakdowns.
func (uc *PortfolioUseCase) Analyze(ctx context.Context, req *models.PortfolioRequest) (*models.PortfolioAnalysis, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	r, err := uc.resolve(snap, allocationsMap(req.Allocations), req.PeriodMonths)
	if err != nil {
		return nil, err
	}
	series := analytics.PortfolioReturns(r.returns, r.weights)
	if len(series) == 0 {
		return nil, xhttp.BadRequestError("selected funds share no common dates")
	}

	returns := buildReturnsSeries(series)
	benchName := req.Benchmark
	if benchName == "" {
		benchName = defaultBenchmark
	}
	if bench, ok := snap.Benchmarks[benchName]; ok {
		overlay := bench.AlignTo(series.Dates())
		returns.BenchmarkCumulative = map[string][]float64{
			benchName: analytics.CumulativeReturns(overlay.Values()),
		}
	} else if req.Benchmark != "" {
		return nil, xhttp.NotFoundErrorf("benchmark %q not found", req.Benchmark)
	}

	return &models.PortfolioAnalysis{
		Metrics:              computeMetrics(series.Values()),
		Returns:              *returns,
		CategoryBreakdown:    breakdown(r, func(f *models.Fund) string { return f.Category }),
		SubcategoryBreakdown: breakdown(r, func(f *models.Fund) string { return f.Subcategory }),
		FundBreakdown:        fundBreakdown(r),
		LiquidityBreakdown:   liquidityBreakdown(r),
		AverageLiquidityDays: averageLiquidityDays(r),
	}, nil
}

// Returns computes only the combined return series.
func (uc *PortfolioUseCase) Returns(ctx context.Context, req *models.PortfolioReturnsRequest) (*models.PortfolioReturnsSeries, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	r, err := uc.resolve(snap, req.Allocations, req.PeriodMonths)
	if err != nil {
		return nil, err
	}
	series := analytics.PortfolioReturns(r.returns, r.weights)
	if len(series) == 0 {
		return nil, xhttp.BadRequestError("selected funds share no common dates")
	}
	return buildReturnsSeries(series), nil
}

// Metrics computes only the performance metrics.
func (uc *PortfolioUseCase) Metrics(ctx context.Context, req *models.PortfolioReturnsRequest) (*models.PortfolioMetricsResult, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	r, err := uc.resolve(snap, req.Allocations, req.PeriodMonths)
	if err != nil {
		return nil, err
	}
	series := analytics.PortfolioReturns(r.returns, r.weights)
	if len(series) == 0 {
		return nil, xhttp.BadRequestError("selected funds share no common dates")
	}
	m := computeMetrics(series.Values())
	return &m, nil
}

func buildReturnsSeries(series analytics.Series) *models.PortfolioReturnsSeries {
	values := series.Values()
	return &models.PortfolioReturnsSeries{
		Dates:             series.DateStrings(),
		Returns:           values,
		CumulativeReturns: analytics.CumulativeReturns(values),
	}
}

func computeMetrics(xs []float64) models.PortfolioMetricsResult {
	m := models.PortfolioMetricsResult{
		TotalReturn:      analytics.TotalReturn(xs),
		AnnualizedReturn: analytics.AnnualizedReturn(xs, analytics.TradingDaysPerYear),
		Volatility:       analytics.Volatility(xs, analytics.TradingDaysPerYear),
		SharpeRatio:      analytics.SharpeRatio(xs, 0, analytics.TradingDaysPerYear),
		MaxDrawdown:      analytics.MaxDrawdown(xs),
		VaR95:            analytics.VaR(xs, 0.95),
		CVaR95:           analytics.CVaR(xs, 0.95),
	}
	m.OmegaRatio = finite(analytics.OmegaRatio(xs, 0))
	m.RachevRatio = finite(analytics.RachevRatio(xs, 0.05))
	return m
}

func breakdown(r *resolved, key func(*models.Fund) string) []models.CategoryBreakdown {
	agg := make(map[string]float64)
	for _, f := range r.funds {
		k := key(f)
		if k == "" {
			k = "Outros"
		}
		agg[k] += r.weights[f.Name]
	}
	out := make([]models.CategoryBreakdown, 0, len(agg))
	for k, w := range agg {
		out = append(out, models.CategoryBreakdown{Category: k, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func fundBreakdown(r *resolved) []models.PortfolioAllocation {
	out := make([]models.PortfolioAllocation, 0, len(r.funds))
	for _, f := range r.funds {
		out = append(out, models.PortfolioAllocation{FundName: f.Name, Weight: r.weights[f.Name]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].FundName < out[j].FundName
	})
	return out
}

func liquidityBreakdown(r *resolved) []models.LiquidityBreakdown {
	type bucket struct {
		weight float64
		days   int
	}
	agg := make(map[string]bucket)
	for _, f := range r.funds {
		label := f.Liquidity
		days := 0
		if f.LiquidityDays != nil {
			days = *f.LiquidityDays
		}
		if label == "" {
			label = "Sem informação"
		}
		b := agg[label]
		b.weight += r.weights[f.Name]
		b.days = days
		agg[label] = b
	}
	out := make([]models.LiquidityBreakdown, 0, len(agg))
	for label, b := range agg {
		out = append(out, models.LiquidityBreakdown{Liquidity: label, Weight: b.weight, Days: b.days})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}

func averageLiquidityDays(r *resolved) int {
	sum, total := 0.0, 0.0
	for _, f := range r.funds {
		if f.LiquidityDays == nil {
			continue
		}
		w := r.weights[f.Name]
		sum += float64(*f.LiquidityDays) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(sum / total))
}
