package analytics

import "math"

// TradingDaysPerYear is the annualization base for daily series.
const TradingDaysPerYear = 252

// CumulativeReturns compounds a return series into cumulative performance.
func CumulativeReturns(returns []float64) []float64 {
	out := make([]float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		acc *= 1 + r
		out[i] = acc - 1
	}
	return out
}

// TotalReturn is the compounded return over the whole series.
func TotalReturn(returns []float64) float64 {
	acc := 1.0
	for _, r := range returns {
		acc *= 1 + r
	}
	return acc - 1
}

// AnnualizedReturn geometrically annualizes the series.
func AnnualizedReturn(returns []float64, periodsPerYear int) float64 {
	if len(returns) == 0 {
		return 0
	}
	years := float64(len(returns)) / float64(periodsPerYear)
	if years <= 0 {
		return 0
	}
	return math.Pow(1+TotalReturn(returns), 1/years) - 1
}

// Volatility is the annualized sample standard deviation.
func Volatility(returns []float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	return Std(returns) * math.Sqrt(float64(periodsPerYear))
}

// volEpsilon is the level below which a volatility is treated as zero;
// summation rounding leaves constant series with a residual on the order
// of 1e-19 rather than an exact zero.
const volEpsilon = 1e-12

// SharpeRatio is annualized excess return over annualized volatility.
// Degenerate volatility reports zero rather than an exploding ratio.
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) float64 {
	vol := Volatility(returns, periodsPerYear)
	if vol < volEpsilon {
		return 0
	}
	return (AnnualizedReturn(returns, periodsPerYear) - riskFreeRate) / vol
}

// MaxDrawdown is the deepest peak-to-trough loss, as a negative fraction.
func MaxDrawdown(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	cum, peak, worst := 1.0, 1.0, 0.0
	for _, r := range returns {
		cum *= 1 + r
		if cum > peak {
			peak = cum
		}
		dd := (cum - peak) / peak
		if dd < worst {
			worst = dd
		}
	}
	return worst
}

// UnderwaterSeries is the drawdown at every observation.
func UnderwaterSeries(returns []float64) []float64 {
	out := make([]float64, len(returns))
	cum, peak := 1.0, 1.0
	for i, r := range returns {
		cum *= 1 + r
		if cum > peak {
			peak = cum
		}
		out[i] = (cum - peak) / peak
	}
	return out
}

// VaR is the lower-tail Value at Risk at the given confidence
// (0.95 -> 5th percentile of returns).
func VaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return Percentile(returns, (1-confidence)*100)
}

// VaRUpper is the upper-tail bound (0.95 -> 95th percentile of returns).
func VaRUpper(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return Percentile(returns, confidence*100)
}

// CVaR is the mean return at or below the lower VaR bound.
func CVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	bound := VaR(returns, confidence)
	var sum float64
	var n int
	for _, r := range returns {
		if r <= bound {
			sum += r
			n++
		}
	}
	if n == 0 {
		return bound
	}
	return sum / float64(n)
}

// CVaRUpper is the mean return at or above the upper VaR bound.
func CVaRUpper(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	bound := VaRUpper(returns, confidence)
	var sum float64
	var n int
	for _, r := range returns {
		if r >= bound {
			sum += r
			n++
		}
	}
	if n == 0 {
		return bound
	}
	return sum / float64(n)
}

// OmegaRatio is the probability-weighted gain/loss ratio around threshold.
func OmegaRatio(returns []float64, threshold float64) float64 {
	if len(returns) == 0 {
		return 1
	}
	var gains, losses float64
	for _, r := range returns {
		excess := r - threshold
		if excess > 0 {
			gains += excess
		} else {
			losses -= excess
		}
	}
	if losses == 0 {
		if gains > 0 {
			return math.Inf(1)
		}
		return 1
	}
	return gains / losses
}

// RachevRatio compares expected gains in the best alpha tail to expected
// losses in the worst alpha tail.
func RachevRatio(returns []float64, alpha float64) float64 {
	if len(returns) == 0 {
		return 1
	}
	upper := Percentile(returns, (1-alpha)*100)
	lower := Percentile(returns, alpha*100)

	var gainSum, lossSum float64
	var gainN, lossN int
	for _, r := range returns {
		if r >= upper {
			gainSum += r
			gainN++
		}
		if r <= lower {
			lossSum += r
			lossN++
		}
	}
	if gainN == 0 || lossN == 0 {
		return 1
	}
	expectedGain := gainSum / float64(gainN)
	expectedLoss := math.Abs(lossSum / float64(lossN))
	if expectedLoss == 0 {
		if expectedGain > 0 {
			return math.Inf(1)
		}
		return 1
	}
	return expectedGain / expectedLoss
}

// SortinoRatio divides annualized excess return by downside deviation.
func SortinoRatio(returns []float64, target float64, periodsPerYear int) float64 {
	if len(returns) < 2 {
		return 0
	}
	annRet := AnnualizedReturn(returns, periodsPerYear)

	var downSum float64
	var downN int
	for _, r := range returns {
		if r < target {
			downSum += r * r
			downN++
		}
	}
	if downN == 0 {
		if annRet > target {
			return math.Inf(1)
		}
		return 0
	}
	downside := math.Sqrt(downSum/float64(downN)) * math.Sqrt(float64(periodsPerYear))
	if downside == 0 {
		if annRet > target {
			return math.Inf(1)
		}
		return 0
	}
	return (annRet - target) / downside
}

// CalmarRatio divides annualized return by the magnitude of max drawdown.
func CalmarRatio(returns []float64, periodsPerYear int) float64 {
	annRet := AnnualizedReturn(returns, periodsPerYear)
	mdd := math.Abs(MaxDrawdown(returns))
	if mdd == 0 {
		if annRet > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return annRet / mdd
}

// Beta regresses the series against benchmark returns of equal length.
func Beta(returns, benchmark []float64) float64 {
	n := len(returns)
	if n < 2 || len(benchmark) != n {
		return 1
	}
	mr, mb := Mean(returns), Mean(benchmark)
	var cov, varB float64
	for i := 0; i < n; i++ {
		cov += (returns[i] - mr) * (benchmark[i] - mb)
		varB += (benchmark[i] - mb) * (benchmark[i] - mb)
	}
	if varB == 0 {
		return 1
	}
	return cov / varB
}

// Alpha is Jensen's alpha over annualized returns.
func Alpha(returns, benchmark []float64, riskFreeRate float64, periodsPerYear int) float64 {
	if len(returns) < 2 || len(benchmark) != len(returns) {
		return 0
	}
	b := Beta(returns, benchmark)
	port := AnnualizedReturn(returns, periodsPerYear)
	bench := AnnualizedReturn(benchmark, periodsPerYear)
	return port - (riskFreeRate + b*(bench-riskFreeRate))
}

// InformationRatio is annualized active return over tracking error.
func InformationRatio(returns, benchmark []float64, periodsPerYear int) float64 {
	n := len(returns)
	if n < 2 || len(benchmark) != n {
		return 0
	}
	excess := make([]float64, n)
	for i := range returns {
		excess[i] = returns[i] - benchmark[i]
	}
	te := Std(excess) * math.Sqrt(float64(periodsPerYear))
	if te == 0 {
		return 0
	}
	return Mean(excess) * float64(periodsPerYear) / te
}

// ZScore standardizes a value against a mean and standard deviation.
func ZScore(value, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (value - mean) / std
}
