package models

// Frequency is the horizon over which a return or flow metric is computed.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Frequencies lists the supported horizons in display order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}
}

// FrequencyMetric holds return/VaR statistics for one frequency.
// var_95 is the lower (loss) bound and var_5 the upper (gain) bound; the
// naming is inherited from the upstream data pipeline.
type FrequencyMetric struct {
	ReturnValue *float64 `json:"return_value,omitempty"`
	VaR95       *float64 `json:"var_95,omitempty"`
	VaR5        *float64 `json:"var_5,omitempty"`
	CVaR95      *float64 `json:"cvar_95,omitempty"`
	CVaR5       *float64 `json:"cvar_5,omitempty"`
	ZScore      *float64 `json:"z_score,omitempty"`
}

// FlowMetrics holds net-new-money and shareholder changes per frequency.
type FlowMetrics struct {
	AUM          *float64 `json:"aum,omitempty"`
	Shareholders *int     `json:"shareholders,omitempty"`

	DailyTransfers    *float64 `json:"daily_transfers,omitempty"`
	DailyTransfersPct *float64 `json:"daily_transfers_pct,omitempty"`
	DailyInvestors    *int     `json:"daily_investors,omitempty"`
	DailyInvestorsPct *float64 `json:"daily_investors_pct,omitempty"`

	WeeklyTransfers    *float64 `json:"weekly_transfers,omitempty"`
	WeeklyTransfersPct *float64 `json:"weekly_transfers_pct,omitempty"`
	WeeklyInvestors    *int     `json:"weekly_investors,omitempty"`
	WeeklyInvestorsPct *float64 `json:"weekly_investors_pct,omitempty"`

	MonthlyTransfers    *float64 `json:"monthly_transfers,omitempty"`
	MonthlyTransfersPct *float64 `json:"monthly_transfers_pct,omitempty"`
	MonthlyInvestors    *int     `json:"monthly_investors,omitempty"`
	MonthlyInvestorsPct *float64 `json:"monthly_investors_pct,omitempty"`
}

// TransfersPct returns the net-new-money percentage for a frequency.
func (f *FlowMetrics) TransfersPct(freq Frequency) *float64 {
	if f == nil {
		return nil
	}
	switch freq {
	case FrequencyDaily:
		return f.DailyTransfersPct
	case FrequencyWeekly:
		return f.WeeklyTransfersPct
	case FrequencyMonthly:
		return f.MonthlyTransfersPct
	}
	return nil
}

// InvestorsPct returns the shareholder-change percentage for a frequency.
func (f *FlowMetrics) InvestorsPct(freq Frequency) *float64 {
	if f == nil {
		return nil
	}
	switch freq {
	case FrequencyDaily:
		return f.DailyInvestorsPct
	case FrequencyWeekly:
		return f.WeeklyInvestorsPct
	case FrequencyMonthly:
		return f.MonthlyInvestorsPct
	}
	return nil
}

// FundRiskRecord aggregates per-frequency risk and flow metrics for one fund.
// Records are built fresh per response and never mutated afterwards.
type FundRiskRecord struct {
	FundName    string           `json:"fund_name"`
	Subcategory string           `json:"subcategory,omitempty"`
	Daily       *FrequencyMetric `json:"daily,omitempty"`
	Weekly      *FrequencyMetric `json:"weekly,omitempty"`
	Monthly     *FrequencyMetric `json:"monthly,omitempty"`
	Flows       *FlowMetrics     `json:"flows,omitempty"`

	// Trailing samples for distribution charts, capped at 500 points.
	DailyReturns   []float64 `json:"daily_returns,omitempty"`
	WeeklyReturns  []float64 `json:"weekly_returns,omitempty"`
	MonthlyReturns []float64 `json:"monthly_returns,omitempty"`
}

// Metric returns the frequency metric for freq, nil when absent.
func (r *FundRiskRecord) Metric(freq Frequency) *FrequencyMetric {
	switch freq {
	case FrequencyDaily:
		return r.Daily
	case FrequencyWeekly:
		return r.Weekly
	case FrequencyMonthly:
		return r.Monthly
	}
	return nil
}

// DistributionData backs the per-fund return-distribution chart.
type DistributionData struct {
	FundName     string    `json:"fund_name"`
	Frequency    Frequency `json:"frequency"`
	Returns      []float64 `json:"returns"`
	KDEX         []float64 `json:"kde_x"`
	KDEY         []float64 `json:"kde_y"`
	VaR95        float64   `json:"var_95"`
	VaR5         float64   `json:"var_5"`
	CVaR95       float64   `json:"cvar_95"`
	CVaR5        float64   `json:"cvar_5"`
	LatestReturn float64   `json:"latest_return"`
}
