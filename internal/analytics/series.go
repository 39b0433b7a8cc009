// Package analytics implements the return-series calculations behind the fund
// and portfolio endpoints: cumulative performance, risk ratios, VaR/CVaR
// percentiles, and frequency aggregation.
package analytics

import (
	"math"
	"sort"
	"time"

	"FundLens/pkg/util"
)

// Point is one dated observation of a return series.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is a date-ordered return series. Values are fractional returns,
// not percentages.
type Series []Point

// Values extracts the raw observations.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Dates extracts the observation dates.
func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, p := range s {
		out[i] = p.Date
	}
	return out
}

// DateStrings renders dates as YYYY-MM-DD for JSON payloads.
func (s Series) DateStrings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = util.FormatDate(p.Date)
	}
	return out
}

// Last returns the most recent observation, zero when empty.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Value
}

// Trailing returns the last n observations (the whole series when shorter).
func (s Series) Trailing(n int) Series {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Since filters observations at or after cutoff.
func (s Series) Since(cutoff time.Time) Series {
	i := sort.Search(len(s), func(i int) bool { return !s[i].Date.Before(cutoff) })
	return s[i:]
}

// SincePeriodMonths keeps the trailing period ending at the last observation.
// nil months means the full series.
func (s Series) SincePeriodMonths(months *int) Series {
	if months == nil || len(s) == 0 {
		return s
	}
	cutoff := s[len(s)-1].Date.AddDate(0, -*months, 0)
	return s.Since(cutoff)
}

// AlignTo reindexes the series onto dates: each date takes the most recent
// observation at or before it, zero when none exists yet. The result is
// always parallel to dates.
func (s Series) AlignTo(dates []time.Time) Series {
	out := make(Series, len(dates))
	j := 0
	var last float64
	seen := false
	for i, d := range dates {
		for j < len(s) && !s[j].Date.After(d) {
			last = s[j].Value
			seen = true
			j++
		}
		v := 0.0
		if seen {
			v = last
		}
		out[i] = Point{Date: d, Value: v}
	}
	return out
}

// Clean drops NaN observations.
func (s Series) Clean() Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if !math.IsNaN(p.Value) {
			out = append(out, p)
		}
	}
	return out
}

// Mean is the arithmetic mean of the observations.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Std is the sample standard deviation (n-1 denominator).
func Std(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// Percentile computes the p-th percentile (0..100) with linear interpolation
// between closest ranks, matching numpy's default.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
