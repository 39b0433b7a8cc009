package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

func seriesOf(values ...float64) Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Point{Date: start.AddDate(0, 0, i), Value: v}
	}
	return s
}

func TestCumulativeReturns(t *testing.T) {
	got := CumulativeReturns([]float64{0.10, -0.05, 0.02})
	require.Len(t, got, 3)
	assert.InDelta(t, 0.10, got[0], 1e-12)
	assert.InDelta(t, 1.10*0.95-1, got[1], 1e-12)
	assert.InDelta(t, 1.10*0.95*1.02-1, got[2], 1e-12)
}

func TestTotalAndAnnualizedReturn(t *testing.T) {
	rets := []float64{0.01, 0.01, 0.01}
	total := TotalReturn(rets)
	assert.InDelta(t, math.Pow(1.01, 3)-1, total, 1e-12)

	ann := AnnualizedReturn(rets, TradingDaysPerYear)
	years := 3.0 / 252.0
	assert.InDelta(t, math.Pow(1+total, 1/years)-1, ann, 1e-9)

	assert.Zero(t, AnnualizedReturn(nil, TradingDaysPerYear))
}

func TestVolatilityAndSharpe(t *testing.T) {
	rets := []float64{0.01, -0.01, 0.02, -0.02}
	vol := Volatility(rets, TradingDaysPerYear)
	assert.InDelta(t, Std(rets)*math.Sqrt(252), vol, 1e-12)

	assert.Zero(t, Volatility([]float64{0.01}, TradingDaysPerYear))
	assert.Zero(t, SharpeRatio([]float64{0.0, 0.0, 0.0}, 0, TradingDaysPerYear), "zero vol yields zero sharpe")

	// nonzero constants leave a rounding residual in Std, not an exact zero
	constant := make([]float64, 120)
	for i := range constant {
		constant[i] = 0.001
	}
	assert.Zero(t, SharpeRatio(constant, 0, TradingDaysPerYear), "degenerate vol yields zero sharpe")
}

func TestMaxDrawdown(t *testing.T) {
	// +10%, then -50%: drawdown from the 1.10 peak to 0.55
	got := MaxDrawdown([]float64{0.10, -0.50})
	assert.InDelta(t, -0.50, got, 1e-12)

	assert.Zero(t, MaxDrawdown([]float64{0.01, 0.02}))
	assert.Zero(t, MaxDrawdown(nil))

	uw := UnderwaterSeries([]float64{0.10, -0.50})
	assert.InDelta(t, 0, uw[0], 1e-12)
	assert.InDelta(t, -0.50, uw[1], 1e-12)
}

func TestPercentileInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, Percentile(xs, 0), 1e-12)
	assert.InDelta(t, 4.0, Percentile(xs, 100), 1e-12)
	assert.InDelta(t, 2.5, Percentile(xs, 50), 1e-12)
	assert.InDelta(t, 1.15, Percentile(xs, 5), 1e-12) // numpy matches
}

func TestVaRBounds(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i+1) / 100 // 0.01 .. 1.00
	}
	lower := VaR(xs, 0.95)
	upper := VaRUpper(xs, 0.95)
	assert.Less(t, lower, upper)
	assert.InDelta(t, 0.0595, lower, 1e-9)
	assert.InDelta(t, 0.9505, upper, 1e-9)

	assert.LessOrEqual(t, CVaR(xs, 0.95), lower)
	assert.GreaterOrEqual(t, CVaRUpper(xs, 0.95), upper)
}

func TestOmegaAndSortino(t *testing.T) {
	assert.InDelta(t, 1.0, OmegaRatio(nil, 0), 1e-12)
	assert.InDelta(t, 2.0, OmegaRatio([]float64{0.02, -0.01}, 0), 1e-12)
	assert.True(t, math.IsInf(OmegaRatio([]float64{0.01, 0.02}, 0), 1))

	assert.True(t, math.IsInf(SortinoRatio([]float64{0.01, 0.02, 0.03}, 0, TradingDaysPerYear), 1))
	assert.Zero(t, SortinoRatio([]float64{0.01}, 0, TradingDaysPerYear))
}

func TestBetaAlphaInformation(t *testing.T) {
	bench := []float64{0.01, -0.02, 0.015, 0.005, -0.01}
	port := make([]float64, len(bench))
	for i, b := range bench {
		port[i] = 2 * b
	}
	assert.InDelta(t, 2.0, Beta(port, bench), 1e-9)
	assert.InDelta(t, 1.0, Beta(bench, bench), 1e-9)
	assert.Equal(t, 1.0, Beta(port, bench[:2]), "length mismatch falls back to 1")

	assert.Zero(t, InformationRatio(bench, bench, TradingDaysPerYear), "zero tracking error")
}

func TestZScore(t *testing.T) {
	assert.InDelta(t, 2.0, ZScore(3, 1, 1), 1e-12)
	assert.Zero(t, ZScore(3, 1, 0))
}

func TestReturnsForFrequency(t *testing.T) {
	daily := seriesOf(0.01, 0.01, 0.01, 0.01, 0.01, 0.01)

	assert.Equal(t, daily, ReturnsForFrequency(daily, models.FrequencyDaily))

	weekly := ReturnsForFrequency(daily, models.FrequencyWeekly)
	require.Len(t, weekly, 2)
	want := math.Pow(1.01, 5) - 1
	assert.InDelta(t, want, weekly[0].Value, 1e-12)
	assert.Equal(t, daily[4].Date, weekly[0].Date)

	assert.Nil(t, ReturnsForFrequency(daily, models.FrequencyMonthly), "too short for 22-day window")
}

func TestRiskMetricsMinimumSample(t *testing.T) {
	assert.Nil(t, RiskMetrics(seriesOf(0.01, 0.02)))

	s := seriesOf(0.01, -0.02, 0.005, 0.015, -0.01, 0.02, -0.005, 0.01, 0.0, -0.015, 0.03)
	m := RiskMetrics(s)
	require.NotNil(t, m)
	assert.InDelta(t, 0.03, m.Return, 1e-12)
	assert.Less(t, m.VaR95, m.VaR5, "lower bound sits below upper bound")
	assert.InDelta(t, -0.02, m.Min, 1e-12)
	assert.InDelta(t, 0.03, m.Max, 1e-12)
}

func TestPortfolioReturnsAlignment(t *testing.T) {
	a := seriesOf(0.01, 0.02, 0.03)
	b := seriesOf(0.03, 0.02, 0.01)[:2] // shorter: last date missing

	got := PortfolioReturns(
		map[string]Series{"A": a, "B": b},
		map[string]float64{"A": 1, "B": 1},
	)
	require.Len(t, got, 2, "only the common dates survive")
	assert.InDelta(t, 0.02, got[0].Value, 1e-12)
	assert.InDelta(t, 0.02, got[1].Value, 1e-12)

	assert.Nil(t, PortfolioReturns(map[string]Series{"A": a}, map[string]float64{"A": 0}))
	assert.Nil(t, PortfolioReturns(nil, nil))
}

func TestPortfolioReturnsWeightNormalization(t *testing.T) {
	a := seriesOf(0.10, 0.10)
	b := seriesOf(0.00, 0.00)

	got := PortfolioReturns(
		map[string]Series{"A": a, "B": b},
		map[string]float64{"A": 3, "B": 1}, // 75/25 after normalization
	)
	require.Len(t, got, 2)
	assert.InDelta(t, 0.075, got[0].Value, 1e-12)
}

func TestSeriesHelpers(t *testing.T) {
	s := seriesOf(0.01, math.NaN(), 0.03)
	clean := s.Clean()
	require.Len(t, clean, 2)
	assert.InDelta(t, 0.03, clean.Last(), 1e-12)

	assert.Len(t, s.Trailing(2), 2)
	assert.Len(t, s.Trailing(10), 3)

	cut := s.Since(s[1].Date)
	assert.Len(t, cut, 2)
}

func TestSeriesAlignTo(t *testing.T) {
	day := func(n int) time.Time { return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC) }
	s := Series{
		{Date: day(2), Value: 0.01},
		{Date: day(5), Value: 0.02},
	}
	dates := []time.Time{day(1), day(2), day(3), day(5), day(7)}

	got := s.AlignTo(dates)
	require.Len(t, got, len(dates))
	assert.Zero(t, got[0].Value, "no observation yet")
	assert.InDelta(t, 0.01, got[1].Value, 1e-12)
	assert.InDelta(t, 0.01, got[2].Value, 1e-12, "forward-filled")
	assert.InDelta(t, 0.02, got[3].Value, 1e-12)
	assert.InDelta(t, 0.02, got[4].Value, 1e-12)
	assert.Equal(t, dates[4], got[4].Date)

	assert.Empty(t, s.AlignTo(nil))
}

func TestKDE(t *testing.T) {
	xs := []float64{-0.02, -0.01, 0.0, 0.005, 0.01, 0.02, -0.005, 0.015, -0.015, 0.0}
	grid, density := KDE(xs)
	require.Len(t, grid, KDEGridSize)
	require.Len(t, density, KDEGridSize)
	for _, d := range density {
		assert.GreaterOrEqual(t, d, 0.0)
	}
	assert.Less(t, grid[0], grid[KDEGridSize-1])

	g, d := KDE([]float64{0.01})
	assert.Nil(t, g)
	assert.Nil(t, d)
}
