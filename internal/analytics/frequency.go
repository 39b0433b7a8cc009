package analytics

import (
	"sort"

	"FundLens/internal/domain/models"
	"FundLens/pkg/util"
)

// Rolling window sizes, in trading days, for the non-daily horizons.
const (
	WeeklyWindow  = 5
	MonthlyWindow = 22
)

// ReturnsForFrequency derives the series for a horizon from daily returns.
// Weekly and monthly use rolling compounded windows, so the first window-1
// observations are dropped.
func ReturnsForFrequency(daily Series, freq models.Frequency) Series {
	switch freq {
	case models.FrequencyWeekly:
		return rollingCompound(daily, WeeklyWindow)
	case models.FrequencyMonthly:
		return rollingCompound(daily, MonthlyWindow)
	default:
		return daily
	}
}

func rollingCompound(daily Series, window int) Series {
	if len(daily) < window {
		return nil
	}
	out := make(Series, 0, len(daily)-window+1)
	for i := window - 1; i < len(daily); i++ {
		acc := 1.0
		for j := i - window + 1; j <= i; j++ {
			acc *= 1 + daily[j].Value
		}
		out = append(out, Point{Date: daily[i].Date, Value: acc - 1})
	}
	return out
}

// RiskMetricsResult is the per-frequency statistics feeding the risk monitor.
type RiskMetricsResult struct {
	Return float64
	Mean   float64
	Std    float64
	ZScore float64
	VaR95  float64
	VaR5   float64
	CVaR95 float64
	CVaR5  float64
	Min    float64
	Max    float64
}

// MinRiskObservations is the minimum sample size for risk metrics.
const MinRiskObservations = 10

// RiskMetrics computes the risk statistics for a return series, nil when
// fewer than MinRiskObservations clean points remain.
func RiskMetrics(s Series) *RiskMetricsResult {
	clean := s.Clean()
	if len(clean) < MinRiskObservations {
		return nil
	}
	xs := clean.Values()
	latest := clean.Last()
	mean := Mean(xs)
	std := Std(xs)

	minV, maxV := xs[0], xs[0]
	for _, x := range xs {
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}

	return &RiskMetricsResult{
		Return: latest,
		Mean:   mean,
		Std:    std,
		ZScore: ZScore(latest, mean, std),
		VaR95:  VaR(xs, 0.95),
		VaR5:   VaRUpper(xs, 0.95),
		CVaR95: CVaR(xs, 0.95),
		CVaR5:  CVaRUpper(xs, 0.95),
		Min:    minV,
		Max:    maxV,
	}
}

// PortfolioReturns combines fund return series into a weighted portfolio
// series over the common date range. Weights are normalized; a zero total
// weight or empty intersection yields nil.
func PortfolioReturns(fundReturns map[string]Series, weights map[string]float64) Series {
	if len(fundReturns) == 0 || len(weights) == 0 {
		return nil
	}
	total := 0.0
	for name := range fundReturns {
		total += weights[name]
	}
	if total == 0 {
		return nil
	}

	// count dates present in every series
	counts := make(map[string]int)
	dates := make(map[string]Point)
	for _, s := range fundReturns {
		for _, p := range s {
			key := util.FormatDate(p.Date)
			counts[key]++
			dates[key] = Point{Date: p.Date}
		}
	}

	sums := make(map[string]float64)
	for name, s := range fundReturns {
		w := weights[name] / total
		for _, p := range s {
			key := util.FormatDate(p.Date)
			if counts[key] == len(fundReturns) {
				sums[key] += p.Value * w
			}
		}
	}

	out := make(Series, 0, len(sums))
	for key, p := range dates {
		if counts[key] == len(fundReturns) {
			out = append(out, Point{Date: p.Date, Value: sums[key]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
