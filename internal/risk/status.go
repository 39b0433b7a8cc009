// Package risk implements the risk-status classification and visual-encoding
// rules used by the risk monitor: VaR-band return classification, net-new-money
// flow thresholds, status aggregation, and the color/formatting helpers the
// presentation layer consumes.
package risk

import (
	"math"

	"FundLens/internal/domain/models"
)

// Status is the three-state classification of a metric. Derived only,
// recomputed per response, never stored.
type Status string

const (
	StatusBad    Status = "bad"
	StatusGood   Status = "good"
	StatusNormal Status = "normal"
)

// Glyph returns the display marker for the status.
func (s Status) Glyph() string {
	switch s {
	case StatusBad:
		return "▼"
	case StatusGood:
		return "▲"
	default:
		return "•"
	}
}

// Flow thresholds in percentage points, keyed by frequency.
const (
	DailyFlowThreshold   = 2.5
	WeeklyFlowThreshold  = 5.0
	MonthlyFlowThreshold = 7.5
)

// FrequencyThreshold returns the flow threshold for a frequency.
func FrequencyThreshold(freq models.Frequency) float64 {
	switch freq {
	case models.FrequencyWeekly:
		return WeeklyFlowThreshold
	case models.FrequencyMonthly:
		return MonthlyFlowThreshold
	default:
		return DailyFlowThreshold
	}
}

func missing(v *float64) bool {
	return v == nil || math.IsNaN(*v)
}

// ClassifyReturn classifies one frequency's return against its VaR band.
// var95 is the lower (loss) bound, var5 the upper (gain) bound. Absent
// inputs flag nothing and resolve to normal.
func ClassifyReturn(value, var95, var5 *float64) Status {
	if missing(value) || missing(var95) || missing(var5) {
		return StatusNormal
	}
	if *value <= *var95 {
		return StatusBad
	}
	if *value >= *var5 {
		return StatusGood
	}
	return StatusNormal
}

// ClassifyMetric classifies a FrequencyMetric, treating a nil metric as
// "nothing to flag".
func ClassifyMetric(m *models.FrequencyMetric) Status {
	if m == nil {
		return StatusNormal
	}
	return ClassifyReturn(m.ReturnValue, m.VaR95, m.VaR5)
}

// ClassifyFlow classifies a net-new-money percentage against a threshold.
func ClassifyFlow(pct *float64, threshold float64) Status {
	if missing(pct) {
		return StatusNormal
	}
	if *pct <= -threshold {
		return StatusBad
	}
	if *pct >= threshold {
		return StatusGood
	}
	return StatusNormal
}

// Aggregate reduces per-frequency statuses to one glyph. Precedence is
// bad > good > normal regardless of input order.
func Aggregate(statuses ...Status) Status {
	agg := StatusNormal
	for _, s := range statuses {
		if s == StatusBad {
			return StatusBad
		}
		if s == StatusGood {
			agg = StatusGood
		}
	}
	return agg
}

// Indicator pairs a status with its display color.
type Indicator struct {
	Status Status `json:"status"`
	Color  string `json:"color"`
}

// FundStatus is the full classification of one fund across frequencies.
type FundStatus struct {
	FundName        string                         `json:"fund_name"`
	Returns         map[models.Frequency]Indicator `json:"returns"`
	Flows           map[models.Frequency]Indicator `json:"flows"`
	ReturnAggregate Status                         `json:"return_aggregate"`
	FlowAggregate   Status                         `json:"flow_aggregate"`
}

// ClassifyFund computes per-frequency return and flow indicators for a risk
// record and reduces each family to its aggregate glyph.
func ClassifyFund(rec *models.FundRiskRecord) FundStatus {
	fs := FundStatus{
		FundName: rec.FundName,
		Returns:  make(map[models.Frequency]Indicator, 3),
		Flows:    make(map[models.Frequency]Indicator, 3),
	}

	var retStatuses, flowStatuses []Status
	for _, freq := range models.Frequencies() {
		m := rec.Metric(freq)
		rs := ClassifyMetric(m)
		var color RGB
		if m != nil {
			color = ReturnColor(m.ReturnValue, m.VaR95, m.VaR5)
		} else {
			color = NeutralGray
		}
		fs.Returns[freq] = Indicator{Status: rs, Color: color.Hex()}
		retStatuses = append(retStatuses, rs)

		threshold := FrequencyThreshold(freq)
		pct := rec.Flows.TransfersPct(freq)
		fls := ClassifyFlow(pct, threshold)
		fs.Flows[freq] = Indicator{Status: fls, Color: FlowColor(pct, threshold).Hex()}
		flowStatuses = append(flowStatuses, fls)
	}

	fs.ReturnAggregate = Aggregate(retStatuses...)
	fs.FlowAggregate = Aggregate(flowStatuses...)
	return fs
}
