package usecase

import (
	"context"
	"sort"

	"FundLens/internal/analytics"
	"FundLens/internal/dataset"
	"FundLens/internal/domain/models"
	xhttp "FundLens/pkg/http"
)

// BenchmarksUseCase serves the benchmark index series (CDI, IBOV, ...).
type BenchmarksUseCase struct {
	store *dataset.Store
}

func NewBenchmarksUseCase(store *dataset.Store) *BenchmarksUseCase {
	return &BenchmarksUseCase{store: store}
}

// List returns the available benchmark names, sorted.
func (uc *BenchmarksUseCase) List(ctx context.Context) ([]string, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	names := make([]string, 0, len(snap.Benchmarks))
	for name := range snap.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Get returns one benchmark's series, optionally trailing period_months.
func (uc *BenchmarksUseCase) Get(ctx context.Context, name string, periodMonths *int) (*models.BenchmarkSeries, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	series, ok := snap.Benchmarks[name]
	if !ok {
		return nil, xhttp.NotFoundErrorf("benchmark %q not found", name)
	}
	return benchmarkSeries(name, series.SincePeriodMonths(periodMonths)), nil
}

// Compare returns several benchmarks side by side over the same period.
func (uc *BenchmarksUseCase) Compare(ctx context.Context, req *models.BenchmarkCompareRequest) ([]models.BenchmarkSeries, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	out := make([]models.BenchmarkSeries, 0, len(req.BenchmarkNames))
	for _, name := range req.BenchmarkNames {
		series, ok := snap.Benchmarks[name]
		if !ok {
			return nil, xhttp.NotFoundErrorf("benchmark %q not found", name)
		}
		out = append(out, *benchmarkSeries(name, series.SincePeriodMonths(req.PeriodMonths)))
	}
	return out, nil
}

func benchmarkSeries(name string, series analytics.Series) *models.BenchmarkSeries {
	values := series.Values()
	return &models.BenchmarkSeries{
		Name:              name,
		Dates:             series.DateStrings(),
		Returns:           values,
		CumulativeReturns: analytics.CumulativeReturns(values),
	}
}
